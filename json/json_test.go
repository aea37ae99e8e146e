package json

import (
	"testing"

	"github.com/zoobzio/pluck"
)

const document = `{"server":{"host":"localhost","tls.mode":"strict"}}`

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
	}
}

func TestDecodeDocument(t *testing.T) {
	capsule, err := pluck.Decode(New(), []byte(document), nil)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if got := capsule.Get("server.host", nil); got != "localhost" {
		t.Errorf("server.host = %v, want %q", got, "localhost")
	}
	if got := capsule.Get("server.tls.mode", nil); got != "strict" {
		t.Errorf("server.tls.mode = %v, want %q", got, "strict")
	}
}

func TestEncodeAfterSetPath(t *testing.T) {
	c := New()

	capsule, err := pluck.Decode(c, []byte(document), nil)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if err := capsule.SetPath("server.host", "example.com"); err != nil {
		t.Fatalf("SetPath() error: %v", err)
	}

	data, err := capsule.Encode(c)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	restored, err := pluck.Decode(c, data, nil)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got := restored.Get("server.host", nil); got != "example.com" {
		t.Errorf("round-trip server.host = %v, want %q", got, "example.com")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v map[string]any
	err := c.Unmarshal([]byte("invalid json"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestMarshalNil(t *testing.T) {
	c := New()

	data, err := c.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}

	if string(data) != "null" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null")
	}
}
