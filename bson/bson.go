// Package bson loads and stores BSON documents for pluck.
package bson

import (
	"github.com/zoobzio/pluck"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
)

// bsonCodec implements pluck.Codec over BSON documents.
type bsonCodec struct{}

// New returns the BSON document codec.
func New() pluck.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal writes the capsule source as a BSON document. The top-level
// value must be a map or struct.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
// Embedded documents decode as bson.M so they remain keyed containers.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return err
	}
	dec.DefaultDocumentM()
	return dec.Decode(v)
}
