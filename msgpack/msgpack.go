// Package msgpack loads and stores MessagePack documents for pluck.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/pluck"
)

// msgpackCodec implements pluck.Codec over MessagePack documents.
type msgpackCodec struct{}

// New returns the MessagePack document codec.
func New() pluck.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal writes the capsule source as a MessagePack map.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal reads a MessagePack map into v. Nested maps decode as
// map[string]any.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
