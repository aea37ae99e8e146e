package pluck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/pluck"
	plucktest "github.com/zoobzio/pluck/testing"
)

func TestSetPath_Maps(t *testing.T) {
	e := pluck.MustNew()
	src := map[string]any{
		"a":   map[string]any{"b": 1},
		"x.y": map[string]any{},
	}

	require.True(t, e.SetPath(src, "a.b", 2))
	require.True(t, e.SetPath(src, "x.y.z", 3))
	require.True(t, e.SetPath(src, "top", 4))

	assert.Equal(t, 2, e.Get(src, "a.b", nil))
	assert.Equal(t, 3, e.Get(src, "x.y.z", nil))
	assert.Equal(t, 4, src["top"])
	assert.False(t, e.SetPath(src, "missing.key", 5))
}

func TestSetPath_DottedFinalKey(t *testing.T) {
	e := pluck.MustNew()
	service := map[string]any{"name": "api", "listen.addr": "0.0.0.0"}
	src := map[string]any{"service": service}

	require.Equal(t, "0.0.0.0", e.Get(src, "service.listen.addr", nil))
	require.True(t, e.SetPath(src, "service.listen.addr", "127.0.0.1"))

	assert.Equal(t, "127.0.0.1", service["listen.addr"])
	assert.NotContains(t, service, "listen")
	assert.Equal(t, "127.0.0.1", e.Get(src, "service.listen.addr", nil))

	loc, ok := e.Locate(src, "service.listen.addr")
	require.True(t, ok)
	assert.Equal(t, "listen.addr", loc.Key())
	assert.Equal(t, "127.0.0.1", loc.Get())
}

func TestSetPath_PrefersDeepestParent(t *testing.T) {
	e := pluck.MustNew()
	listen := map[string]any{}
	src := map[string]any{"service": map[string]any{"listen": listen}}

	require.True(t, e.SetPath(src, "service.listen.addr", "127.0.0.1"))
	assert.Equal(t, map[string]any{"addr": "127.0.0.1"}, listen)
}

func TestSetPath_NestedStructs(t *testing.T) {
	e := pluck.MustNew()
	p := &plucktest.Person{}

	require.True(t, e.SetPath(p, "home.city", "Paris"))
	assert.Equal(t, "Paris", p.Home.City)

	assert.False(t, e.SetPath(p, "work.city", "Berlin"), "nil pointer parent")

	p.Work = &plucktest.Address{}
	require.True(t, e.SetPath(p, "work.city", "Berlin"))
	assert.Equal(t, "Berlin", p.Work.City)
}

func TestSetPath_StructByValueInMap(t *testing.T) {
	e := pluck.MustNew()
	src := map[string]any{"home": plucktest.Address{City: "Paris"}}

	assert.False(t, e.SetPath(src, "home.city", "Rome"))
	assert.Equal(t, "Paris", e.Get(src, "home.city", nil))
}

func TestSetPath_ThroughRecords(t *testing.T) {
	e := pluck.MustNew()
	inner := map[string]any{}
	obj := &example{}
	obj.SetProperty(map[string]any{"a.b": inner})

	require.True(t, e.SetPath(obj, "property.a.b.c", "ok"))
	assert.Equal(t, "ok", inner["c"])
}

func TestLocate(t *testing.T) {
	e := pluck.MustNew()
	src := map[string]any{"a": map[string]any{"b": 1}}

	loc, ok := e.Locate(src, "a.b")
	require.True(t, ok)
	assert.Equal(t, "b", loc.Key())
	assert.Equal(t, src["a"], loc.Parent())
	assert.Equal(t, 1, loc.Get())

	require.True(t, loc.Set(9))
	assert.Equal(t, 9, e.Get(src, "a.b", nil))

	_, ok = e.Locate(src, "nope.b")
	assert.False(t, ok)
	_, ok = e.Locate(nil, "a")
	assert.False(t, ok)

	top, ok := e.Locate(src, "a")
	require.True(t, ok)
	assert.Equal(t, "a", top.Key())
}
