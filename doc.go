// Package pluck reads and writes named values on arbitrary Go values.
//
// A source is either a keyed container (a map with string keys, or a type
// implementing Container) or a record (a struct, a pointer to one, or any
// value exposing methods). Callers ask for a field by name and the Engine
// works out how to reach it.
//
// # Basic Usage
//
//	type User struct {
//	    Name  string `pluck:"name"`
//	    email string
//	}
//
//	func (u *User) GetEmail() string       { return u.email }
//	func (u *User) SetEmail(email string)  { u.email = email }
//
//	user := &User{Name: "alice"}
//	pluck.Get(user, "name", nil)          // "alice" (field)
//	pluck.Set(user, "email", "a@b.c")     // true (setter)
//	pluck.Get(user, "email", nil)         // "a@b.c" (GetEmail)
//
// # Extraction
//
// Engine.Get tries its extractors in order and returns the value of the
// first one that applies:
//
//   - PathResolver: dotted names ("a.b.c") resolved segment by segment
//   - ContainerLookup: map keys and Container.Lookup
//   - FieldLookup: exported struct fields (by name or `pluck` tag) and Dynamic
//   - DirectCall: a zero-argument method with exactly the field name
//   - AccessorCall: transformed method names (GetName, IsName, HasName, Name)
//
// When nothing applies the caller's default is returned.
//
// # Paths
//
// Path segments may themselves contain the delimiter, because containers
// decoded from documents often carry literal dotted keys. The resolver
// tries the shortest head first and grows it on a miss:
//
//	src := map[string]any{"a.b": map[string]any{"c": "deep"}}
//	pluck.Get(src, "a.b.c", nil) // "deep"
//
// # Injection
//
// Engine.SetMany hands the outstanding values to each injector in turn and
// returns the names nobody could place:
//
//   - ContainerMerge: map assignment and Merger.Merge
//   - FieldAssign: exported struct fields (optionally an overflow map)
//   - SetterCall: SetName(value) methods
//   - ExtensionAssign: DynamicSetter.SetField
//
// No type conversion is performed. A value is only stored where it is
// assignable to the destination type.
//
// # Capability Interfaces
//
// Types can take over a concern instead of being inspected through
// reflection:
//
//   - Container / Merger: keyed storage that is not a Go map
//   - Dynamic / DynamicSetter: members that are not declared statically
//   - Caller: dispatch for accessor methods that do not exist statically
//
// # Documents
//
// A Capsule binds a source to an engine. Capsules can be decoded from and
// encoded to serialized documents through a Codec. Implementations live in
// the json, yaml, msgpack, bson and toml subpackages.
package pluck
