// Copyright (c) 2025 Strand Labs, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package graph implements the dependency container underneath loom: a
// registry mapping keys (type plus optional name) to bindings, with
// constructor injection, singleton caching, transient factories, and cycle
// detection.
package graph

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Key identifies a binding in the container.
type Key struct {
	Type reflect.Type
	Name string
}

func (k Key) String() string {
	if k.Name == "" {
		return k.Type.String()
	}
	return fmt.Sprintf("%v[name=%q]", k.Type, k.Name)
}

// A Container maps keys to bindings and resolves them on demand.
//
// Registration and resolution are serialized by an internal mutex.
// Constructors run while resolution holds the lock, so they must not call
// back into the container; transient factories are safe to call from
// anywhere because they capture their dependencies at resolution time.
type Container struct {
	mu    sync.Mutex
	nodes map[Key]node
}

// New builds an empty Container.
func New() *Container {
	return &Container{nodes: make(map[Key]node)}
}

// ProvideOption modifies how a constructor or value is bound.
type ProvideOption interface {
	applyProvide(*provideConfig)
}

type provideConfig struct {
	name      string
	transient bool
}

type nameOption string

func (n nameOption) applyProvide(c *provideConfig) { c.name = string(n) }

// Name binds the constructor's output under the given name, so that
// multiple bindings of one type can coexist.
func Name(name string) ProvideOption { return nameOption(name) }

type transientOption struct{}

func (transientOption) applyProvide(c *provideConfig) { c.transient = true }

// Transient binds a factory instead of a cached instance: consumers receive
// a func with the constructor's return signature and get a fresh instance
// per call.
func Transient() ProvideOption { return transientOption{} }

var _errType = reflect.TypeOf((*error)(nil)).Elem()

// Provide registers a constructor. The constructor must be a non-variadic
// function returning one non-error value, optionally followed by an error.
// A result struct embedding Out fans out into one binding per exported
// field.
func (c *Container) Provide(ctor interface{}, opts ...ProvideOption) error {
	var cfg provideConfig
	for _, opt := range opts {
		opt.applyProvide(&cfg)
	}

	if ctor == nil {
		return errors.New("must provide a constructor function, got nil")
	}
	v := reflect.ValueOf(ctor)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return errors.Errorf("must provide a constructor function, got %v (type %v)", ctor, t)
	}
	if t.IsVariadic() {
		return errors.Errorf("variadic constructors are not supported: %v", t)
	}
	switch t.NumOut() {
	case 1:
		if t.Out(0) == _errType {
			return errors.Errorf("constructor %v returns only an error", t)
		}
	case 2:
		if t.Out(0) == _errType {
			return errors.Errorf("constructor %v must return its value first and the error last", t)
		}
		if t.Out(1) != _errType {
			return errors.Errorf("constructor %v may only return a value and an error", t)
		}
	default:
		return errors.Errorf("constructor %v must return one value and an optional error", t)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if out := t.Out(0); embedsOut(out) {
		if cfg.name != "" {
			return errors.Errorf("cannot name constructor %v: its result struct %v already names its fields", t, out)
		}
		if cfg.transient {
			return errors.Errorf("cannot bind constructor %v as transient: result structs fan out into singletons", t)
		}
		return c.provideResultStruct(v, out)
	}

	if cfg.transient {
		return c.provideTransient(v, cfg.name)
	}

	key := Key{Type: t.Out(0), Name: cfg.name}
	if _, ok := c.nodes[key]; ok {
		return &DuplicateBindingError{Key: key}
	}
	c.nodes[key] = &funcNode{key: key, ctor: v}
	return nil
}

// Supply registers an already-built value, as if a constructor returning it
// had been provided and called.
func (c *Container) Supply(val interface{}, opts ...ProvideOption) error {
	var cfg provideConfig
	for _, opt := range opts {
		opt.applyProvide(&cfg)
	}
	if cfg.transient {
		return errors.New("cannot supply a value as transient")
	}
	if val == nil {
		return errors.New("cannot supply an untyped nil")
	}
	if _, ok := val.(error); ok {
		return errors.Errorf("cannot supply an error value: %v", val)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key{Type: reflect.TypeOf(val), Name: cfg.name}
	if _, ok := c.nodes[key]; ok {
		return &DuplicateBindingError{Key: key}
	}
	c.nodes[key] = &valueNode{val: reflect.ValueOf(val)}
	return nil
}

// Invoke resolves every parameter of fn and calls it. If the last return
// value of fn is a non-nil error, Invoke returns it. Other return values
// are discarded.
func (c *Container) Invoke(fn interface{}) error {
	if fn == nil {
		return errors.New("can't invoke a nil function")
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return errors.Errorf("can't invoke non-function %v (type %v)", fn, t)
	}

	c.mu.Lock()
	args, err := c.args(t, nil)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	// The function runs outside the container lock so that it may call any
	// resolved factories.
	return errorReturn(v.Call(args))
}

// Resolve fills the pointer target with the instance bound under the
// target's element type and the given name.
func (c *Container) Resolve(target interface{}, name string) error {
	if target == nil {
		return errors.New("can't resolve into a nil target")
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return errors.Errorf("can't resolve into %v: target must be a non-nil pointer", v.Type())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key{Type: v.Type().Elem(), Name: name}
	val, err := c.resolveKey(key, nil)
	if err != nil {
		return err
	}
	v.Elem().Set(val)
	return nil
}

// Keys reports every key with a binding, sorted by their string form.
func (c *Container) Keys() []Key {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]Key, 0, len(c.nodes))
	for k := range c.nodes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func (c *Container) String() string {
	var b strings.Builder
	b.WriteString("{bindings:\n")
	for _, k := range c.Keys() {
		c.mu.Lock()
		n := c.nodes[k]
		c.mu.Unlock()
		fmt.Fprintf(&b, "  %v -> %v\n", k, n)
	}
	b.WriteString("}")
	return b.String()
}

func (c *Container) provideResultStruct(ctor reflect.Value, out reflect.Type) error {
	parent := &resultNode{ctor: ctor}

	type binding struct {
		key   Key
		index int
	}
	var bindings []binding
	for i := 0; i < out.NumField(); i++ {
		f := out.Field(i)
		if f.Anonymous && f.Type == _outType {
			continue
		}
		if f.PkgPath != "" {
			// unexported
			continue
		}
		key := Key{Type: f.Type, Name: f.Tag.Get("name")}
		if _, ok := c.nodes[key]; ok {
			return &DuplicateBindingError{Key: key}
		}
		for _, b := range bindings {
			if b.key == key {
				return &DuplicateBindingError{Key: key}
			}
		}
		bindings = append(bindings, binding{key: key, index: i})
	}
	if len(bindings) == 0 {
		return errors.Errorf("result struct %v has no exported fields to bind", out)
	}

	for _, b := range bindings {
		c.nodes[b.key] = &fieldNode{parent: parent, index: b.index}
	}
	return nil
}

func (c *Container) provideTransient(ctor reflect.Value, name string) error {
	t := ctor.Type()
	outs := make([]reflect.Type, t.NumOut())
	for i := range outs {
		outs[i] = t.Out(i)
	}

	key := Key{Type: reflect.FuncOf(nil, outs, false), Name: name}
	if _, ok := c.nodes[key]; ok {
		return &DuplicateBindingError{Key: key}
	}
	c.nodes[key] = &transientNode{key: key, ctor: ctor}
	return nil
}

// args resolves the parameter list of a function type. Must be called with
// the container lock held.
func (c *Container) args(t reflect.Type, chain []Key) ([]reflect.Value, error) {
	args := make([]reflect.Value, t.NumIn())
	for i := range args {
		v, err := c.paramValue(t.In(i), chain)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// call resolves the arguments of fn and calls it, with the lock held.
func (c *Container) call(fn reflect.Value, chain []Key) ([]reflect.Value, error) {
	args, err := c.args(fn.Type(), chain)
	if err != nil {
		return nil, err
	}
	return fn.Call(args), nil
}

// paramValue produces the value for one function parameter: a parameter
// struct embedding In is built field-by-field, anything else is a plain
// binding lookup.
func (c *Container) paramValue(t reflect.Type, chain []Key) (reflect.Value, error) {
	if embedsIn(t) {
		return c.buildInStruct(t, chain)
	}
	return c.resolveKey(Key{Type: t}, chain)
}

func (c *Container) buildInStruct(t reflect.Type, chain []Key) (reflect.Value, error) {
	result := reflect.New(t).Elem()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type == _inType {
			continue
		}
		if f.PkgPath != "" {
			continue
		}

		key := Key{Type: f.Type, Name: f.Tag.Get("name")}
		val, err := c.resolveKey(key, chain)
		if err != nil {
			if f.Tag.Get("optional") == "true" && isMissing(err, key) {
				continue
			}
			return reflect.Value{}, err
		}
		result.Field(i).Set(val)
	}
	return result, nil
}

func (c *Container) resolveKey(key Key, chain []Key) (reflect.Value, error) {
	for _, k := range chain {
		if k == key {
			cycle := make([]Key, len(chain)+1)
			copy(cycle, chain)
			cycle[len(chain)] = key
			return reflect.Value{}, &CycleError{Chain: cycle}
		}
	}

	n, ok := c.nodes[key]
	if !ok {
		return reflect.Value{}, &MissingBindingError{
			Key:   key,
			Chain: append([]Key(nil), chain...),
		}
	}

	next := make([]Key, len(chain)+1)
	copy(next, chain)
	next[len(chain)] = key
	return n.value(c, next)
}

// isMissing reports whether err is a MissingBindingError for exactly the
// given key, as opposed to a miss deeper in the chain.
func isMissing(err error, key Key) bool {
	var missing *MissingBindingError
	if !stderrors.As(err, &missing) {
		return false
	}
	return missing.Key == key
}
