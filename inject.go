package pluck

import (
	"context"
	"maps"
	"reflect"
	"slices"
)

// ContainerMerge writes into string-keyed maps and Merger values.
// map[string]any and Merger take every value. Typed maps take the values
// assignable to their element type. A nil map behind a pointer is allocated.
type ContainerMerge struct{}

// Inject merges values into the map or Merger.
func (ContainerMerge) Inject(_ Scope, target any, values map[string]any) (Injection, bool) {
	if m, ok := target.(Merger); ok {
		m.Merge(maps.Clone(values))
		return Injection{All: true}, true
	}

	m, ok := writableMap(target)
	if !ok || m.IsNil() {
		return Injection{}, false
	}

	elem := m.Type().Elem()
	injected := make([]string, 0, len(values))
	for _, name := range slices.Sorted(maps.Keys(values)) {
		v, ok := assignable(values[name], elem)
		if !ok {
			continue
		}
		m.SetMapIndex(mapKey(m, name), v)
		injected = append(injected, name)
	}
	return injection(injected, values), true
}

// FieldAssign writes exported fields of a struct reached through a pointer.
// Names match by Go name or tag alias, and values must be assignable.
//
// With CreateFields, names the struct does not declare go to its overflow
// field, a map[string]any tagged `pluck:",remain"`.
type FieldAssign struct {
	CreateFields bool
}

// Inject assigns values to matching fields.
func (f FieldAssign) Inject(scope Scope, target any, values map[string]any) (Injection, bool) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return Injection{}, false
	}
	sv := indirect(rv)
	if sv.Kind() != reflect.Struct || !sv.CanSet() {
		return Injection{}, false
	}

	info := scope.engine.catalog.typeOf(sv.Type())
	injected := make([]string, 0, len(values))
	var undeclared []string

	for _, name := range slices.Sorted(maps.Keys(values)) {
		fi, ok := info.fields[name]
		if !ok {
			undeclared = append(undeclared, name)
			continue
		}
		fv, err := sv.FieldByIndexErr(fi.index)
		if err != nil || !fv.CanSet() {
			continue
		}
		v, ok := assignable(values[name], fv.Type())
		if !ok {
			continue
		}
		fv.Set(v)
		injected = append(injected, name)
	}

	if f.CreateFields && info.overflow != nil && len(undeclared) > 0 {
		injected = append(injected, overflowAssign(sv, info.overflow, undeclared, values)...)
	}
	return injection(injected, values), true
}

func overflowAssign(sv reflect.Value, index []int, names []string, values map[string]any) []string {
	ov, err := sv.FieldByIndexErr(index)
	if err != nil || !ov.CanSet() {
		return nil
	}
	if ov.IsNil() {
		ov.Set(reflect.MakeMap(ov.Type()))
	}
	elem := ov.Type().Elem()
	placed := make([]string, 0, len(names))
	for _, name := range names {
		v, ok := assignable(values[name], elem)
		if !ok {
			continue
		}
		ov.SetMapIndex(mapKey(ov, name), v)
		placed = append(placed, name)
	}
	return placed
}

// SetterCall calls Set + Camel(name) with the value as its only argument.
// A setter returning a non-nil error leaves the name unresolved.
type SetterCall struct{}

// Inject calls one setter per value.
func (SetterCall) Inject(scope Scope, target any, values map[string]any) (Injection, bool) {
	if isContainer(target) {
		return Injection{}, false
	}
	rv := reflect.ValueOf(target)
	c := scope.engine.catalog
	info := c.typeOf(rv.Type())

	injected := make([]string, 0, len(values))
	for _, name := range slices.Sorted(maps.Keys(values)) {
		mi, ok := info.methods["Set"+c.caser.Camel(name)]
		if !ok || len(mi.in) != 1 {
			continue
		}
		arg, ok := assignable(values[name], mi.in[0])
		if !ok {
			continue
		}
		out := rv.Method(mi.index).Call([]reflect.Value{arg})
		if mi.err && !out[mi.out-1].IsNil() {
			continue
		}
		injected = append(injected, name)
	}
	return injection(injected, values), true
}

// ExtensionAssign hands each value to DynamicSetter.SetField.
// A rejected value stays unresolved and the rest of the batch continues.
type ExtensionAssign struct{}

// Inject passes values to SetField one at a time.
func (ExtensionAssign) Inject(_ Scope, target any, values map[string]any) (Injection, bool) {
	ds, ok := target.(DynamicSetter)
	if !ok {
		return Injection{}, false
	}

	injected := make([]string, 0, len(values))
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if err := ds.SetField(name, values[name]); err != nil {
			emitExtensionRejected(context.Background(), typeName(target), name, err)
			continue
		}
		injected = append(injected, name)
	}
	return injection(injected, values), true
}

func injection(injected []string, values map[string]any) Injection {
	if len(injected) == len(values) {
		return Injection{All: true}
	}
	return Injection{Injected: injected}
}
