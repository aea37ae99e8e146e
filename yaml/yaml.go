// Package yaml loads and stores YAML documents for pluck.
// Mappings decode to map[string]any and keep dotted keys such as
// "listen.addr" as single keys, which pluck paths still reach.
package yaml

import (
	"github.com/zoobzio/pluck"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements pluck.Codec over YAML documents.
type yamlCodec struct{}

// New returns the YAML document codec.
func New() pluck.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal writes the capsule source as a YAML document.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal reads a YAML document into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
