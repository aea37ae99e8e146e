package pluck

import "strings"

// Location is a resolved write position: a parent value and the key of
// one of its members.
type Location struct {
	engine *Engine
	parent any
	key    string
}

// Parent returns the value holding the member.
func (l Location) Parent() any {
	return l.parent
}

// Key returns the member name within the parent.
func (l Location) Key() string {
	return l.key
}

// Get reads the member, returning nil when it is unset.
func (l Location) Get() any {
	return l.engine.get(Scope{engine: l.engine, literal: true}, l.parent, l.key, nil)
}

// Set assigns the member and reports whether an injector placed it.
func (l Location) Set(value any) bool {
	return len(l.engine.SetMany(l.parent, map[string]any{l.key: value})) == 0
}

// Locate resolves the parent of path, keeping nested structs addressable,
// and returns the position of the remaining key.
//
// The parent is first taken up to the rightmost delimiter. While it
// resolves to nothing, the split moves one delimiter to the left so the
// key grows: in {"a": {"b.c": 1}}, "a.b.c" locates key "b.c" in "a".
// It fails when no parent resolves.
func (e *Engine) Locate(source any, path string) (Location, bool) {
	if isNil(source) {
		return Location{}, false
	}
	if strings.Index(path, e.delimiter) <= 0 {
		return Location{engine: e, parent: source, key: path}, true
	}

	scope := Scope{engine: e, ref: true}
	for end := len(path); ; {
		i := strings.LastIndex(path[:end], e.delimiter)
		if i <= 0 {
			return Location{}, false
		}
		if parent := e.get(scope, source, path[:i], nil); !isNil(parent) {
			return Location{engine: e, parent: parent, key: path[i+len(e.delimiter):]}, true
		}
		end = i
	}
}

// SetPath assigns value at a dotted path. Names without a delimiter behave
// as Set. It fails when the parent is missing or cannot be written.
func (e *Engine) SetPath(target any, path string, value any) bool {
	loc, ok := e.Locate(target, path)
	if !ok {
		return false
	}
	return loc.Set(value)
}
