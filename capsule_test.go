package pluck_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/pluck"
	"github.com/zoobzio/pluck/json"
	plucktest "github.com/zoobzio/pluck/testing"
)

// failingCodec fails every operation.
type failingCodec struct{}

func (failingCodec) ContentType() string { return "application/x-failing" }

func (failingCodec) Marshal(any) ([]byte, error) { return nil, errors.New("boom") }

func (failingCodec) Unmarshal([]byte, any) error { return errors.New("boom") }

func TestCapsule_GetSet(t *testing.T) {
	e := pluck.MustNew()
	p := &plucktest.Person{}
	c := pluck.NewCapsule(p, e)

	assert.Same(t, e, c.Engine())
	assert.Equal(t, p, c.Source())

	require.NoError(t, c.Set("name", "Alice"))
	assert.Equal(t, "Alice", c.Get("name", nil))
	assert.Equal(t, map[string]any{"name": "Alice", "age": 0}, c.GetMany([]string{"name", "age"}, nil))
	assert.Contains(t, c.Writable(), "nickname")
}

func TestCapsule_Unresolved(t *testing.T) {
	c := pluck.NewCapsule(&plucktest.Person{}, nil)

	err := c.SetMany(map[string]any{"name": "A", "b": 1, "a": 2})
	require.ErrorIs(t, err, pluck.ErrUnresolved)

	var unresolved *pluck.UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, []string{"a", "b"}, unresolved.Names)

	assert.ErrorIs(t, c.Set("nope", 1), pluck.ErrUnresolved)
	assert.ErrorIs(t, c.SetPath("work.city", "x"), pluck.ErrUnresolved)
	assert.NoError(t, c.SetPath("home.city", "x"))
}

func TestCapsule_DefaultEngine(t *testing.T) {
	pluck.Reset()
	c := pluck.NewCapsule(map[string]any{}, nil)
	assert.Same(t, pluck.Default(), c.Engine())
}

func TestDecode(t *testing.T) {
	c, err := pluck.Decode(json.New(), []byte(`{"a":{"b.c":true}}`), nil)
	require.NoError(t, err)
	assert.Equal(t, true, c.Get("a.b.c", nil))

	empty, err := pluck.Decode(json.New(), []byte(`null`), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, empty.Source())
}

func TestDecode_Error(t *testing.T) {
	_, err := pluck.Decode(failingCodec{}, []byte("x"), nil)
	require.ErrorIs(t, err, pluck.ErrUnmarshal)

	var codecErr *pluck.CodecError
	require.ErrorAs(t, err, &codecErr)
	assert.Equal(t, "application/x-failing", codecErr.ContentType)
}

func TestEncode(t *testing.T) {
	c := pluck.NewCapsule(map[string]any{"a": 1}, nil)

	data, err := c.Encode(json.New())
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))

	_, err = c.Encode(failingCodec{})
	assert.ErrorIs(t, err, pluck.ErrMarshal)
}
