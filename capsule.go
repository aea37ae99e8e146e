package pluck

// Capsule binds one source to one engine.
//
// Unlike the engine, whose assignments report unresolved names as data,
// a Capsule reports them as an *UnresolvedError.
type Capsule struct {
	source any
	engine *Engine
}

// NewCapsule wraps source. A nil engine uses Default.
func NewCapsule(source any, engine *Engine) *Capsule {
	if engine == nil {
		engine = Default()
	}
	return &Capsule{source: source, engine: engine}
}

// Source returns the wrapped value.
func (c *Capsule) Source() any {
	return c.source
}

// Engine returns the engine the capsule resolves with.
func (c *Capsule) Engine() *Engine {
	return c.engine
}

func (c *Capsule) Get(name string, def any) any {
	return c.engine.Get(c.source, name, def)
}

func (c *Capsule) GetMany(names []string, def any) map[string]any {
	return c.engine.GetMany(c.source, names, def)
}

func (c *Capsule) Set(name string, value any) error {
	return c.SetMany(map[string]any{name: value})
}

func (c *Capsule) SetMany(values map[string]any) error {
	if names := c.engine.SetMany(c.source, values); names != nil {
		return &UnresolvedError{Names: names}
	}
	return nil
}

func (c *Capsule) SetPath(path string, value any) error {
	if !c.engine.SetPath(c.source, path, value) {
		return &UnresolvedError{Names: []string{path}}
	}
	return nil
}

// Writable lists the names that can be assigned on the source.
func (c *Capsule) Writable() []string {
	return c.engine.Writable(c.source)
}
