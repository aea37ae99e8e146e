// Package toml loads and stores TOML documents for pluck.
// Tables decode to map[string]any. Dotted keys are quoted on write.
package toml

import (
	"github.com/BurntSushi/toml"
	"github.com/zoobzio/pluck"
)

// tomlCodec implements pluck.Codec over TOML documents.
type tomlCodec struct{}

// New returns the TOML document codec.
func New() pluck.Codec {
	return &tomlCodec{}
}

// ContentType returns the MIME type for TOML.
func (c *tomlCodec) ContentType() string {
	return "application/toml"
}

// Marshal writes the capsule source as TOML. Only tables (maps and structs)
// can be written.
func (c *tomlCodec) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

// Unmarshal reads a TOML document into v.
func (c *tomlCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
