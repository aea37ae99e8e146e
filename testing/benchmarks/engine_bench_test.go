package benchmarks

import (
	"testing"

	"github.com/zoobzio/pluck"
	plucktest "github.com/zoobzio/pluck/testing"
)

func BenchmarkGet_Map(b *testing.B) {
	e := pluck.MustNew()
	src := map[string]any{"name": "Alice"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Get(src, "name", nil)
	}
}

func BenchmarkGet_Field(b *testing.B) {
	e := pluck.MustNew()
	src := &plucktest.Person{Name: "Alice"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Get(src, "name", nil)
	}
}

func BenchmarkGet_Accessor(b *testing.B) {
	e := pluck.MustNew()
	src := &plucktest.Person{}
	src.SetAge(30)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Get(src, "age", nil)
	}
}

func BenchmarkGet_Path(b *testing.B) {
	e := pluck.MustNew()
	src := map[string]any{
		"a.b": map[string]any{
			"c": &plucktest.Person{Home: plucktest.Address{City: "Paris"}},
		},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Get(src, "a.b.c.home.city", nil)
	}
}

func BenchmarkSetMany_Mixed(b *testing.B) {
	e := pluck.MustNew()
	values := map[string]any{"name": "Alice", "age": 30, "unknown": true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.SetMany(&plucktest.Person{}, values)
	}
}

func BenchmarkSetPath_Nested(b *testing.B) {
	e := pluck.MustNew()
	dst := &plucktest.Person{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.SetPath(dst, "home.city", "Paris")
	}
}
