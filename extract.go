package pluck

import (
	"context"
	"reflect"
	"slices"

	"go.uber.org/multierr"
)

var callerType = reflect.TypeFor[Caller]()

// ContainerLookup reads keys of string-keyed maps and Container values.
// A present key applies even when it holds nil.
type ContainerLookup struct{}

// Extract returns the value stored under name.
func (ContainerLookup) Extract(_ Scope, source any, name string, _ any) (any, bool) {
	if c, ok := source.(Container); ok {
		return c.Lookup(name)
	}

	m, ok := mapOf(source)
	if !ok {
		return nil, false
	}
	v := m.MapIndex(mapKey(m, name))
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

// FieldLookup reads exported struct fields, matched by Go name or tag
// alias, then the overflow field, then Dynamic members.
// A nil pointer, map, slice or interface field counts as unset.
type FieldLookup struct{}

// Extract reads a declared field, the overflow map or a Dynamic member.
func (FieldLookup) Extract(scope Scope, source any, name string, _ any) (any, bool) {
	sv := indirect(reflect.ValueOf(source))
	if sv.Kind() == reflect.Struct {
		info := scope.engine.catalog.typeOf(sv.Type())
		if v, ok := declaredField(scope, sv, info, name); ok {
			return v, true
		}
	}

	if d, ok := source.(Dynamic); ok && d.HasField(name) {
		return d.Field(name), true
	}
	return nil, false
}

func declaredField(scope Scope, sv reflect.Value, info *typeInfo, name string) (any, bool) {
	if fi, ok := info.fields[name]; ok {
		fv, err := sv.FieldByIndexErr(fi.index)
		if err != nil || (fi.nilable && canBeNil(fv.Kind()) && fv.IsNil()) {
			return nil, false
		}
		if scope.ref && fi.nested && fv.CanAddr() {
			return fv.Addr().Interface(), true
		}
		return fv.Interface(), true
	}

	if info.overflow == nil {
		return nil, false
	}
	ov, err := sv.FieldByIndexErr(info.overflow)
	if err != nil || ov.IsNil() {
		return nil, false
	}
	v := ov.MapIndex(mapKey(ov, name))
	if !v.IsValid() || isNil(v.Interface()) {
		return nil, false
	}
	return v.Interface(), true
}

// DirectCall calls a method named exactly like the field, taking no
// arguments, and returns its first result.
type DirectCall struct{}

// Extract calls the method named name and returns its first result.
func (DirectCall) Extract(scope Scope, source any, name string, _ any) (any, bool) {
	if isContainer(source) {
		return nil, false
	}
	rv := reflect.ValueOf(source)
	info := scope.engine.catalog.typeOf(rv.Type())
	mi, ok := info.methods[name]
	if !ok || len(mi.in) != 0 || mi.out == 0 {
		return nil, false
	}
	return rv.Method(mi.index).Call(nil)[0].Interface(), true
}

// AccessorCall calls accessor methods built from the field name by a list
// of transformations, such as GetName or IsActive.
//
// The method chosen for a type and name is cached in the engine, so the
// name conversions and method probes run once per type and name.
type AccessorCall struct {
	transformations []Transformation
}

// NewAccessorCall builds an AccessorCall trying ts in order.
// With no transformations, DefaultTransformations is used.
func NewAccessorCall(ts ...Transformation) (*AccessorCall, error) {
	if len(ts) == 0 {
		ts = DefaultTransformations()
	}
	var err error
	for _, t := range ts {
		err = multierr.Append(err, t.validate())
	}
	if err != nil {
		return nil, err
	}
	return &AccessorCall{transformations: slices.Clone(ts)}, nil
}

// Transformations returns a copy of the transformations tried.
func (a *AccessorCall) Transformations() []Transformation {
	return slices.Clone(a.transformations)
}

// Extract calls the first accessor method that exists for name.
func (a *AccessorCall) Extract(scope Scope, source any, name string, _ any) (any, bool) {
	if isContainer(source) {
		return nil, false
	}
	rv := reflect.ValueOf(source)
	rt := rv.Type()
	c := scope.engine.catalog

	res, fresh := c.accessor(accessorKey{owner: a, typ: rt, name: name}, func() accessorResolution {
		return a.resolve(c, rt, name)
	})
	if fresh {
		emitAccessorResolved(context.Background(), rt.String(), name, res.method)
	}

	switch {
	case !res.found:
		return nil, false
	case res.dynamic:
		return source.(Caller).CallMethod(res.method), true
	default:
		return rv.Method(res.index).Call(nil)[0].Interface(), true
	}
}

func (a *AccessorCall) resolve(c *catalog, rt reflect.Type, name string) accessorResolution {
	info := c.typeOf(rt)
	dynamic := rt.Implements(callerType)

	var camel, snake *string
	camelOf := func() string {
		if camel == nil {
			s := c.caser.Camel(name)
			camel = &s
		}
		return *camel
	}
	snakeOf := func() string {
		if snake == nil {
			s := c.caser.Snake(name)
			snake = &s
		}
		return *snake
	}

	for _, t := range a.transformations {
		method := t.methodName(name, camelOf, snakeOf)
		if mi, ok := info.methods[method]; ok && len(mi.in) == 0 && mi.out > 0 {
			return accessorResolution{method: method, index: mi.index, found: true}
		}
		if t.Dynamic && dynamic {
			return accessorResolution{method: method, dynamic: true, found: true}
		}
	}
	return accessorResolution{}
}
