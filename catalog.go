package pluck

import (
	"reflect"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/zoobzio/sentinel"
)

// DefaultTag is the struct tag consulted for field aliases.
//
//	Name  string         `pluck:"name"`     // reachable as "name" and "Name"
//	Skip  string         `pluck:"-"`        // never reachable
//	Extra map[string]any `pluck:",remain"`  // overflow for WithCreateFields
const DefaultTag = "pluck"

func init() {
	sentinel.Tag(DefaultTag)
}

// fieldInfo describes one declared field reachable by name.
type fieldInfo struct {
	name    string // Go field name
	key     string // primary lookup name (tag alias or Go name)
	index   []int  // reflect.Value.FieldByIndex access path
	nested  bool   // field holds a struct value
	nilable bool   // field can hold nil (pointer, map, slice, interface)
}

// methodInfo describes one exported method of a type.
type methodInfo struct {
	index int
	in    []reflect.Type // parameters, receiver excluded
	out   int
	err   bool // last result is an error
}

// typeInfo is the cached view of one runtime type.
type typeInfo struct {
	name     string
	fields   map[string]fieldInfo // by Go name and tag alias
	order    []fieldInfo          // declaration order
	overflow []int                // index of the remain map, nil if none
	methods  map[string]methodInfo
	writable []string
}

// accessorKey identifies one accessor resolution.
type accessorKey struct {
	owner *AccessorCall
	typ   reflect.Type
	name  string
}

// accessorResolution is the cached outcome of AccessorCall for a type and name.
type accessorResolution struct {
	method  string
	index   int
	dynamic bool
	found   bool
}

// catalog caches per-type metadata for one engine.
// Entries are keyed by runtime type, never by instance.
type catalog struct {
	tag   string
	caser Caser

	mu        sync.RWMutex
	types     map[reflect.Type]*typeInfo
	accessors map[accessorKey]accessorResolution
}

func newCatalog(tag string, caser Caser) *catalog {
	return &catalog{
		tag:       tag,
		caser:     caser,
		types:     make(map[reflect.Type]*typeInfo),
		accessors: make(map[accessorKey]accessorResolution),
	}
}

// typeOf returns cached metadata for rt, building it on first use.
func (c *catalog) typeOf(rt reflect.Type) *typeInfo {
	// Fast path: read-lock cache check
	c.mu.RLock()
	if info, ok := c.types[rt]; ok {
		c.mu.RUnlock()
		return info
	}
	c.mu.RUnlock()

	// Slow path: build and cache with write-lock
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check pattern
	if info, ok := c.types[rt]; ok {
		return info
	}

	info := c.build(rt)
	c.types[rt] = info
	return info
}

// accessor returns the cached resolution for key, calling resolve on a miss.
// The second result is true when resolve ran.
func (c *catalog) accessor(key accessorKey, resolve func() accessorResolution) (accessorResolution, bool) {
	c.mu.RLock()
	res, ok := c.accessors[key]
	c.mu.RUnlock()
	if ok {
		return res, false
	}

	// resolve consults typeOf, so it must run without the lock held.
	res = resolve()

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.accessors[key]; ok {
		return existing, false
	}
	c.accessors[key] = res
	return res, true
}

func (c *catalog) build(rt reflect.Type) *typeInfo {
	info := &typeInfo{
		name:    rt.String(),
		fields:  make(map[string]fieldInfo),
		methods: make(map[string]methodInfo),
	}

	for i := 0; i < rt.NumMethod(); i++ {
		m := rt.Method(i)
		if !m.IsExported() {
			continue
		}
		mt := m.Type
		first := 1 // receiver
		if rt.Kind() == reflect.Interface {
			first = 0
		}
		mi := methodInfo{index: i, out: mt.NumOut()}
		for j := first; j < mt.NumIn(); j++ {
			mi.in = append(mi.in, mt.In(j))
		}
		if mi.out > 0 && mt.Out(mi.out-1) == errorType {
			mi.err = true
		}
		info.methods[m.Name] = mi
	}

	st := rt
	for st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() == reflect.Struct {
		c.buildFields(info, st)
	}

	info.writable = c.writableNames(info, rt.Kind() == reflect.Pointer)
	return info
}

// buildFields indexes the declared fields of struct type st.
func (c *catalog) buildFields(info *typeInfo, st reflect.Type) {
	meta := scanStruct(st, c.tag)
	aliased := make([]fieldInfo, 0, len(meta.Fields))

	for _, fm := range meta.Fields {
		sf := st.FieldByIndex(fm.Index)
		if !sf.IsExported() {
			continue
		}

		fi := fieldInfo{
			name:  fm.Name,
			key:   fm.Name,
			index: fm.Index,
		}
		switch fm.Kind {
		case sentinel.KindStruct:
			fi.nested = true
		case sentinel.KindPointer, sentinel.KindMap, sentinel.KindSlice, sentinel.KindInterface:
			fi.nilable = true
		}

		alias, opts, _ := strings.Cut(sf.Tag.Get(c.tag), ",")
		if alias == "-" {
			continue
		}
		if opts == "remain" && isOverflowType(sf.Type) {
			info.overflow = fm.Index
			continue
		}
		if alias != "" {
			fi.key = alias
			aliased = append(aliased, fi)
		}

		info.fields[fi.name] = fi
		info.order = append(info.order, fi)
	}

	// Aliases win over Go names of other fields.
	for _, fi := range aliased {
		info.fields[fi.key] = fi
	}
}

// writableNames lists assignable fields plus the snake-cased names behind
// SetXxx methods. Fields are only assignable through a pointer.
func (c *catalog) writableNames(info *typeInfo, addressable bool) []string {
	names := make([]string, 0, len(info.order))
	if addressable {
		for _, fi := range info.order {
			names = append(names, fi.key)
		}
	}
	for name, mi := range info.methods {
		if len(mi.in) == 1 && hasWordPrefix(name, "Set") {
			names = append(names, c.caser.Snake(strings.TrimPrefix(name, "Set")))
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// scanStruct returns sentinel metadata for st, scanning it directly when
// the type was never registered with sentinel.
func scanStruct(st reflect.Type, tag string) sentinel.Metadata {
	if meta, ok := sentinel.Lookup(st.String()); ok {
		return meta
	}

	fields := reflect.VisibleFields(st)
	meta := sentinel.Metadata{
		TypeName:    st.Name(),
		PackageName: st.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, len(fields)),
	}

	for _, sf := range fields {
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        make(map[string]string),
		}
		if val, ok := sf.Tag.Lookup(tag); ok {
			fm.Tags[tag] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Pointer:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return meta
}

func isOverflowType(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String && t.Elem().Kind() == reflect.Interface
}

// hasWordPrefix reports whether name starts with prefix followed by an
// upper-case letter ("SetName" but not "Settle").
func hasWordPrefix(name, prefix string) bool {
	if len(name) <= len(prefix) || !strings.HasPrefix(name, prefix) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name[len(prefix):])
	return unicode.IsUpper(r)
}
