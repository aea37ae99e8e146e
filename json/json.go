// Package json loads and stores JSON documents for pluck.
//
// Objects decode to map[string]any, so a document passed to pluck.Decode
// becomes a Capsule whose dotted paths walk nested objects:
//
//	doc, err := pluck.Decode(json.New(), data, nil)
//	host := doc.Get("server.host", "localhost")
package json

import (
	"encoding/json"

	"github.com/zoobzio/pluck"
)

// jsonCodec implements pluck.Codec over JSON documents.
type jsonCodec struct{}

// New returns the JSON document codec.
func New() pluck.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal writes the capsule source as a JSON document.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal reads a JSON document into v, usually a *map[string]any.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
