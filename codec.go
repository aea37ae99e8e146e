package pluck

// Codec provides content-type aware marshaling of documents.
// Implementations live in the json, yaml, msgpack, bson and toml packages.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Decode unmarshals a document into a map and binds it to engine.
// A nil engine uses Default. An empty or null document yields an empty map.
func Decode(codec Codec, data []byte, engine *Engine) (*Capsule, error) {
	var doc map[string]any
	if len(data) > 0 {
		if err := codec.Unmarshal(data, &doc); err != nil {
			return nil, newCodecError(ErrUnmarshal, codec.ContentType(), err)
		}
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	return NewCapsule(doc, engine), nil
}

// Encode marshals the capsule's source.
func (c *Capsule) Encode(codec Codec) ([]byte, error) {
	data, err := codec.Marshal(c.source)
	if err != nil {
		return nil, newCodecError(ErrMarshal, codec.ContentType(), err)
	}
	return data, nil
}
