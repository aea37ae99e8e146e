package pluck_test

import (
	"testing"

	"github.com/zoobzio/pluck"
	plucktest "github.com/zoobzio/pluck/testing"
)

func TestDefault_Caching(t *testing.T) {
	pluck.Reset() // Clear cache

	e1 := pluck.Default()
	e2 := pluck.Default()

	if e1 != e2 {
		t.Error("Default() should return cached engine")
	}
}

func TestReset(t *testing.T) {
	e1 := pluck.Default()
	pluck.Reset()
	e2 := pluck.Default()

	if e1 == e2 {
		t.Error("Reset() should drop the cached engine")
	}
}

func TestPackageFunctions(t *testing.T) {
	pluck.Reset()

	src := map[string]any{"a": map[string]any{"b": 1}}
	if got := pluck.Get(src, "a.b", nil); got != 1 {
		t.Errorf("Get() = %v, want 1", got)
	}

	many := pluck.GetMany(src, []string{"a.b", "a.c"}, 0)
	if many["a.b"] != 1 || many["a.c"] != 0 {
		t.Errorf("GetMany() = %v", many)
	}

	p := &plucktest.Person{}
	if !pluck.Set(p, "name", "Alice") || p.Name != "Alice" {
		t.Errorf("Set() name = %q", p.Name)
	}
	if got := pluck.SetMany(p, map[string]any{"age": 3, "nope": 1}); len(got) != 1 || got[0] != "nope" {
		t.Errorf("SetMany() = %v, want [nope]", got)
	}
	if !pluck.SetPath(src, "a.c", 2) || pluck.Get(src, "a.c", nil) != 2 {
		t.Error("SetPath() should write nested keys")
	}

	loc, ok := pluck.Locate(src, "a.b")
	if !ok || loc.Get() != 1 {
		t.Errorf("Locate() = %v, %v", loc, ok)
	}

	if w := pluck.Writable(map[string]any{"k": 1}); len(w) != 1 || w[0] != "k" {
		t.Errorf("Writable() = %v", w)
	}
	if g := pluck.Getters(p); len(g) != 1 || g[0] != "GetAge" {
		t.Errorf("Getters() = %v", g)
	}
	if s := pluck.Setters(p); len(s) != 2 {
		t.Errorf("Setters() = %v", s)
	}
}
