package pluck

import (
	"context"
	"maps"
	"reflect"
	"slices"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/zoobzio/sentinel"
	"go.uber.org/multierr"
)

// DefaultDelimiter separates path segments.
const DefaultDelimiter = "."

// Extractor reads one named value from a source.
//
// Extract reports whether it applies to the source and name. When it does,
// the returned value is final, even when nil: the engine stops there.
type Extractor interface {
	Extract(scope Scope, source any, name string, def any) (any, bool)
}

// Injector assigns a batch of values to a target.
//
// Inject reports whether it applies to the target. When it does, the
// returned Injection tells the engine which names were placed.
type Injector interface {
	Inject(scope Scope, target any, values map[string]any) (Injection, bool)
}

// Injection is the outcome of one Inject call.
type Injection struct {
	// All means every value passed in was placed.
	All bool

	// Injected names the values placed when All is false.
	Injected []string
}

// Scope carries per-call state through one resolution.
// It lives on the call stack and is never stored by strategies.
type Scope struct {
	engine  *Engine
	literal bool
	ref     bool
}

// Engine returns the engine running the resolution.
func (s Scope) Engine() *Engine {
	return s.engine
}

// Literal reports whether names are taken as literal keys, with path
// splitting disabled.
func (s Scope) Literal() bool {
	return s.literal
}

// Reference reports whether nested structs should be returned as pointers
// so they can be written in place.
func (s Scope) Reference() bool {
	return s.ref
}

// Get resolves name against source within this scope.
func (s Scope) Get(source any, name string, def any) any {
	return s.engine.get(s, source, name, def)
}

func (s Scope) asLiteral() Scope {
	s.literal = true
	return s
}

func (s Scope) asPath() Scope {
	s.literal = false
	return s
}

// Engine resolves named values through ordered extraction and injection
// strategies. An Engine is immutable after New and safe for concurrent use.
type Engine struct {
	extractors []Extractor
	injectors  []Injector
	delimiter  string
	catalog    *catalog
}

// config collects option values before the engine is built.
type config struct {
	extractors      []Extractor
	injectors       []Injector
	delimiter       string
	transformations []Transformation
	caser           Caser
	tag             string
	createFields    bool
}

// Option configures an Engine.
type Option func(*config)

// WithExtractors replaces the default extractor chain.
func WithExtractors(extractors ...Extractor) Option {
	return func(c *config) {
		c.extractors = slices.Clone(extractors)
	}
}

// WithInjectors replaces the default injector chain.
func WithInjectors(injectors ...Injector) Option {
	return func(c *config) {
		c.injectors = slices.Clone(injectors)
	}
}

// WithDelimiter sets the path delimiter. Defaults to ".".
func WithDelimiter(delimiter string) Option {
	return func(c *config) {
		c.delimiter = delimiter
	}
}

// WithTransformations sets the accessor method names tried by the default
// AccessorCall, in order.
func WithTransformations(transformations ...Transformation) Option {
	return func(c *config) {
		c.transformations = slices.Clone(transformations)
	}
}

// WithCaser sets the name-casing converter.
func WithCaser(caser Caser) Option {
	return func(c *config) {
		c.caser = caser
	}
}

// WithTag sets the struct tag read for field aliases. Defaults to "pluck".
func WithTag(tag string) Option {
	return func(c *config) {
		c.tag = tag
	}
}

// WithCreateFields lets the default FieldAssign store undeclared names in
// a record's overflow field (a map[string]any tagged `pluck:",remain"`).
func WithCreateFields() Option {
	return func(c *config) {
		c.createFields = true
	}
}

// New builds an Engine. Every configuration problem is reported, combined
// into one error.
func New(opts ...Option) (*Engine, error) {
	cfg := &config{
		delimiter: DefaultDelimiter,
		caser:     DefaultCaser(),
		tag:       DefaultTag,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var err error
	if cfg.delimiter == "" {
		err = multierr.Append(err, newConfigError(ErrEmptyDelimiter, "WithDelimiter", ""))
	}
	if cfg.tag == "" {
		err = multierr.Append(err, newConfigError(ErrEmptyTag, "WithTag", ""))
	}
	if cfg.caser == nil {
		err = multierr.Append(err, newConfigError(ErrNilStrategy, "WithCaser", ""))
	}
	for i, x := range cfg.extractors {
		if x == nil {
			err = multierr.Append(err, newConfigError(ErrNilStrategy, "WithExtractors", strconv.Itoa(i)))
		}
	}
	for i, in := range cfg.injectors {
		if in == nil {
			err = multierr.Append(err, newConfigError(ErrNilStrategy, "WithInjectors", strconv.Itoa(i)))
		}
	}
	for _, t := range cfg.transformations {
		err = multierr.Append(err, t.validate())
	}
	if err != nil {
		return nil, err
	}

	if cfg.tag != DefaultTag {
		sentinel.Tag(cfg.tag)
	}

	if cfg.extractors == nil {
		cfg.extractors, err = defaultExtractors(cfg)
		if err != nil {
			return nil, err
		}
	}
	if cfg.injectors == nil {
		cfg.injectors = defaultInjectors(cfg)
	}

	e := &Engine{
		extractors: cfg.extractors,
		injectors:  cfg.injectors,
		delimiter:  cfg.delimiter,
		catalog:    newCatalog(cfg.tag, cfg.caser),
	}
	emitEngineCreated(context.Background(), len(e.extractors), len(e.injectors))
	return e, nil
}

// MustNew is New that panics on a configuration error.
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

func defaultExtractors(cfg *config) ([]Extractor, error) {
	path, err := NewPathResolver(cfg.delimiter)
	if err != nil {
		return nil, err
	}
	accessors, err := NewAccessorCall(cfg.transformations...)
	if err != nil {
		return nil, err
	}
	return []Extractor{
		path,
		ContainerLookup{},
		FieldLookup{},
		DirectCall{},
		accessors,
	}, nil
}

func defaultInjectors(cfg *config) []Injector {
	return []Injector{
		ContainerMerge{},
		FieldAssign{CreateFields: cfg.createFields},
		SetterCall{},
		ExtensionAssign{},
	}
}

// Extractors returns a copy of the extractor chain.
func (e *Engine) Extractors() []Extractor {
	return slices.Clone(e.extractors)
}

// Injectors returns a copy of the injector chain.
func (e *Engine) Injectors() []Injector {
	return slices.Clone(e.injectors)
}

// Delimiter returns the path delimiter used by SetPath and Locate.
func (e *Engine) Delimiter() string {
	return e.delimiter
}

// Caser returns the configured name-casing converter.
func (e *Engine) Caser() Caser {
	return e.catalog.caser
}

// Get returns the value named name in source, or def when no extractor
// applies. Dotted names are resolved through nested values.
func (e *Engine) Get(source any, name string, def any) any {
	return e.get(Scope{engine: e}, source, name, def)
}

func (e *Engine) get(scope Scope, source any, name string, def any) any {
	if isNil(source) {
		return def
	}
	for _, x := range e.extractors {
		if v, ok := x.Extract(scope, source, name, def); ok {
			return v
		}
	}
	return def
}

// GetMany resolves every distinct name once.
func (e *Engine) GetMany(source any, names []string, def any) map[string]any {
	out := make(map[string]any, len(names))
	scope := Scope{engine: e}
	for _, name := range names {
		if _, done := out[name]; done {
			continue
		}
		out[name] = e.get(scope, source, name, def)
	}
	return out
}

// Set assigns value to the member name of target.
// Names are literal; use SetPath for dotted paths.
func (e *Engine) Set(target any, name string, value any) bool {
	return len(e.SetMany(target, map[string]any{name: value})) == 0
}

// SetMany assigns every value it can and returns the sorted names it could
// not place, or nil when all were placed.
func (e *Engine) SetMany(target any, values map[string]any) []string {
	return e.setMany(Scope{engine: e}, target, values)
}

func (e *Engine) setMany(scope Scope, target any, values map[string]any) []string {
	if len(values) == 0 {
		return nil
	}

	outstanding := mapset.NewThreadUnsafeSet[string]()
	for name := range values {
		outstanding.Add(name)
	}

	if !isNil(target) {
		for _, in := range e.injectors {
			pending := make(map[string]any, outstanding.Cardinality())
			for _, name := range outstanding.ToSlice() {
				pending[name] = values[name]
			}

			res, ok := in.Inject(scope, target, pending)
			if !ok {
				continue
			}
			if res.All {
				outstanding.Clear()
				break
			}
			for _, name := range res.Injected {
				outstanding.Remove(name)
			}
			if outstanding.Cardinality() == 0 {
				break
			}
		}
	}

	if outstanding.Cardinality() == 0 {
		return nil
	}
	names := outstanding.ToSlice()
	slices.Sort(names)
	emitInjectPartial(context.Background(), typeName(target), len(names))
	return names
}

// Writable lists the names that can be assigned on target: keys of a map,
// or the settable fields and setter names of a record.
func (e *Engine) Writable(target any) []string {
	if isNil(target) {
		return nil
	}
	if m, ok := mapOf(target); ok {
		names := make([]string, 0, m.Len())
		for _, k := range m.MapKeys() {
			names = append(names, k.String())
		}
		slices.Sort(names)
		return names
	}
	return slices.Clone(e.catalog.typeOf(reflect.TypeOf(target)).writable)
}

// Getters lists methods of target named Get followed by an upper-case
// letter that take no arguments.
func (e *Engine) Getters(target any) []string {
	return e.methodsWithPrefix(target, "Get", func(mi methodInfo) bool {
		return len(mi.in) == 0 && mi.out > 0
	})
}

// Setters lists methods of target named Set followed by an upper-case
// letter that take one argument.
func (e *Engine) Setters(target any) []string {
	return e.methodsWithPrefix(target, "Set", func(mi methodInfo) bool {
		return len(mi.in) == 1
	})
}

func (e *Engine) methodsWithPrefix(target any, prefix string, shape func(methodInfo) bool) []string {
	if isNil(target) {
		return nil
	}
	info := e.catalog.typeOf(reflect.TypeOf(target))
	var names []string
	for _, name := range slices.Sorted(maps.Keys(info.methods)) {
		if hasWordPrefix(name, prefix) && shape(info.methods[name]) {
			names = append(names, name)
		}
	}
	return names
}
