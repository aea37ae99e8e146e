package pluck

// Capability interfaces allow types to bypass reflection-based access.
// When a source implements one of these interfaces, the matching strategy
// calls the interface method instead of inspecting the type.

// Container is a keyed container that is not a Go map.
// Ordered maps and document nodes typically implement it.
type Container interface {
	// Lookup returns the value stored under key and whether the key exists.
	Lookup(key string) (any, bool)
}

// Merger accepts a batch of values in one operation.
// A Merger is expected to take every value it is given.
type Merger interface {
	Merge(values map[string]any)
}

// Dynamic exposes members that are not declared statically.
type Dynamic interface {
	// HasField reports whether name is currently set on the receiver.
	HasField(name string) bool

	// Field returns the value of a dynamic member. It is only called
	// after HasField returned true for the same name.
	Field(name string) any
}

// DynamicSetter accepts assignments to members that are not declared
// statically. Returning an error leaves the name unresolved without
// aborting the rest of the batch.
type DynamicSetter interface {
	SetField(name string, value any) error
}

// Caller dispatches accessor methods that do not exist statically.
// It is consulted by AccessorCall for transformations with Dynamic set.
type Caller interface {
	CallMethod(method string) any
}
