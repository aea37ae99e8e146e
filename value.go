package pluck

import (
	"reflect"
)

// isNil reports whether v is absent: untyped nil or a nil pointer, map,
// slice, interface, func or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if canBeNil(rv.Kind()) {
		return rv.IsNil()
	}
	return false
}

func canBeNil(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// indirect follows pointers and interfaces. It returns the zero Value when
// a nil is met on the way.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// isStringMap reports whether v is a map keyed by a string kind.
func isStringMap(v reflect.Value) bool {
	return v.IsValid() && v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String
}

// mapOf returns the string-keyed map behind source, following pointers.
func mapOf(source any) (reflect.Value, bool) {
	v := indirect(reflect.ValueOf(source))
	if !isStringMap(v) {
		return reflect.Value{}, false
	}
	return v, true
}

// isContainer reports whether source is a keyed container.
func isContainer(source any) bool {
	if _, ok := source.(Container); ok {
		return true
	}
	if _, ok := source.(Merger); ok {
		return true
	}
	_, ok := mapOf(source)
	return ok
}

// writableMap returns the map behind target ready for assignment.
// A nil map reached through a pointer is allocated in place.
func writableMap(target any) (reflect.Value, bool) {
	v := reflect.ValueOf(target)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		elem := v.Elem()
		if v.Kind() == reflect.Pointer && isStringMap(elem) && elem.IsNil() {
			elem.Set(reflect.MakeMap(elem.Type()))
		}
		v = elem
	}
	if !isStringMap(v) {
		return reflect.Value{}, false
	}
	return v, true
}

// mapKey converts name to the key type of m.
func mapKey(m reflect.Value, name string) reflect.Value {
	return reflect.ValueOf(name).Convert(m.Type().Key())
}

// assignable returns value as a reflect.Value that can be stored in a
// destination of type t. No conversion is attempted.
func assignable(value any, t reflect.Type) (reflect.Value, bool) {
	if value == nil {
		if canBeNil(t.Kind()) {
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return v, true
}

// typeName renders the dynamic type of v for signals.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

var errorType = reflect.TypeFor[error]()
