package bson

import (
	"testing"

	"github.com/zoobzio/pluck"
)

func document(t *testing.T) []byte {
	t.Helper()
	data, err := New().Marshal(map[string]any{
		"server": map[string]any{
			"host":     "localhost",
			"tls.mode": "strict",
		},
	})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	return data
}

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/bson")
	}
}

func TestDecodeDocument(t *testing.T) {
	capsule, err := pluck.Decode(New(), document(t), nil)
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

	capsule, err := pluck.Decode(c, document(t), nil)
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
	err := c.Unmarshal([]byte("invalid bson"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
