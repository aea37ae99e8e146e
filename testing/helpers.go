// Package testing provides test utilities for pluck.
package testing

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/atomic"

	"github.com/zoobzio/pluck"
)

// ErrReadOnly is returned by Properties.SetField for names starting with "_".
var ErrReadOnly = errors.New("read-only property")

// CountingCaser wraps a Caser and counts conversions.
type CountingCaser struct {
	inner pluck.Caser
	camel atomic.Int64
	snake atomic.Int64
}

// NewCountingCaser returns a CountingCaser around pluck.DefaultCaser.
func NewCountingCaser() *CountingCaser {
	return &CountingCaser{inner: pluck.DefaultCaser()}
}

// Camel implements pluck.Caser.
func (c *CountingCaser) Camel(name string) string {
	c.camel.Add(1)
	return c.inner.Camel(name)
}

// Snake implements pluck.Caser.
func (c *CountingCaser) Snake(name string) string {
	c.snake.Add(1)
	return c.inner.Snake(name)
}

// CamelCalls returns the number of Camel calls so far.
func (c *CountingCaser) CamelCalls() int {
	return int(c.camel.Load())
}

// SnakeCalls returns the number of Snake calls so far.
func (c *CountingCaser) SnakeCalls() int {
	return int(c.snake.Load())
}

// Calls returns the total number of conversions so far.
func (c *CountingCaser) Calls() int {
	return c.CamelCalls() + c.SnakeCalls()
}

// Address is a nested record.
type Address struct {
	Street string `pluck:"street"`
	City   string `pluck:"city"`
}

// Person is a record exposing members through fields, a setter and getters.
type Person struct {
	Name   string         `pluck:"name"`
	Email  string         `pluck:"email"`
	Home   Address        `pluck:"home"`
	Work   *Address       `pluck:"work"`
	Secret string         `pluck:"-"`
	Extra  map[string]any `pluck:",remain"`

	age  int
	nick string
}

// SetAge stores the unexported age.
func (p *Person) SetAge(age int) {
	p.age = age
}

// GetAge returns the unexported age.
func (p *Person) GetAge() int {
	return p.age
}

// IsAdult reports whether age is at least 18.
func (p *Person) IsAdult() bool {
	return p.age >= 18
}

// SetNickname rejects empty nicknames.
func (p *Person) SetNickname(nick string) error {
	if nick == "" {
		return errors.New("empty nickname")
	}
	p.nick = nick
	return nil
}

// Nickname returns the nickname set through SetNickname.
func (p *Person) Nickname() string {
	return p.nick
}

// Properties is a record whose members are all dynamic.
type Properties struct {
	values map[string]any
	calls  []string
}

// NewProperties returns Properties holding a copy of values.
func NewProperties(values map[string]any) *Properties {
	p := &Properties{values: make(map[string]any, len(values))}
	for k, v := range values {
		p.values[k] = v
	}
	return p
}

// HasField implements pluck.Dynamic. Nil values count as unset.
func (p *Properties) HasField(name string) bool {
	v, ok := p.values[name]
	return ok && v != nil
}

// Field implements pluck.Dynamic.
func (p *Properties) Field(name string) any {
	return p.values[name]
}

// SetField implements pluck.DynamicSetter.
func (p *Properties) SetField(name string, value any) error {
	if strings.HasPrefix(name, "_") {
		return fmt.Errorf("%w: %s", ErrReadOnly, name)
	}
	p.values[name] = value
	return nil
}

// CallMethod implements pluck.Caller and records the method name.
func (p *Properties) CallMethod(method string) any {
	p.calls = append(p.calls, method)
	return method + "()"
}

// Calls returns the methods dispatched through CallMethod.
func (p *Properties) Calls() []string {
	return slices.Clone(p.calls)
}

// Node is an ordered keyed container that is not a Go map.
type Node struct {
	keys   []string
	values map[string]any
}

// NewNode returns a Node holding pairs in order: key, value, key, value...
func NewNode(pairs ...any) *Node {
	n := &Node{values: make(map[string]any)}
	for i := 0; i+1 < len(pairs); i += 2 {
		n.put(pairs[i].(string), pairs[i+1])
	}
	return n
}

// Lookup implements pluck.Container.
func (n *Node) Lookup(key string) (any, bool) {
	v, ok := n.values[key]
	return v, ok
}

// Merge implements pluck.Merger. New keys keep insertion order by name.
func (n *Node) Merge(values map[string]any) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		n.put(k, values[k])
	}
}

// Keys returns the keys in insertion order.
func (n *Node) Keys() []string {
	return slices.Clone(n.keys)
}

func (n *Node) put(key string, value any) {
	if _, ok := n.values[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.values[key] = value
}
