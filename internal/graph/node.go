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

package graph

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

type node interface {
	// value produces the bound instance. chain holds the keys currently
	// being resolved, including this node's own key.
	value(c *Container, chain []Key) (reflect.Value, error)
}

// valueNode holds an instance supplied by the user, ready to hand out.
type valueNode struct {
	val reflect.Value
}

func (n *valueNode) value(*Container, []Key) (reflect.Value, error) {
	return n.val, nil
}

func (n *valueNode) String() string {
	return fmt.Sprintf("(value) %v", n.val.Type())
}

// funcNode calls its constructor at most once and caches the outcome,
// including a construction error. This is singleton scope.
type funcNode struct {
	key    Key
	ctor   reflect.Value
	called bool
	cached reflect.Value
	err    error
}

func (n *funcNode) value(c *Container, chain []Key) (reflect.Value, error) {
	if n.called {
		return n.cached, n.err
	}

	out, err := c.call(n.ctor, chain)
	n.called = true
	if err == nil {
		err = errorReturn(out)
	}
	if err != nil {
		n.err = errors.Wrapf(err, "constructing %v", n.key)
		return reflect.Value{}, n.err
	}

	n.cached = out[0]
	return n.cached, nil
}

func (n *funcNode) String() string {
	return fmt.Sprintf("(constructor) %v <= %v, called: %v", n.key, n.ctor.Type(), n.called)
}

// resultNode backs the bindings fanned out of a constructor returning an
// Out struct. The constructor runs at most once; fieldNodes project
// individual fields out of the cached result.
type resultNode struct {
	ctor   reflect.Value
	called bool
	result reflect.Value
	err    error
}

func (n *resultNode) resolve(c *Container, chain []Key) (reflect.Value, error) {
	if n.called {
		return n.result, n.err
	}

	out, err := c.call(n.ctor, chain)
	n.called = true
	if err == nil {
		err = errorReturn(out)
	}
	if err != nil {
		n.err = errors.Wrapf(err, "constructing %v", n.ctor.Type().Out(0))
		return reflect.Value{}, n.err
	}

	n.result = out[0]
	return n.result, nil
}

type fieldNode struct {
	parent *resultNode
	index  int
}

func (n *fieldNode) value(c *Container, chain []Key) (reflect.Value, error) {
	result, err := n.parent.resolve(c, chain)
	if err != nil {
		return reflect.Value{}, err
	}
	return result.Field(n.index), nil
}

func (n *fieldNode) String() string {
	t := n.parent.ctor.Type().Out(0)
	return fmt.Sprintf("(field) %v.%v <= %v", t, t.Field(n.index).Name, n.parent.ctor.Type())
}

// transientNode binds a factory function. Dependencies of the constructor
// are resolved once, when the factory itself is first resolved; every call
// of the factory re-runs the constructor with those dependencies, yielding
// a fresh instance per call. This is transient scope.
type transientNode struct {
	key   Key
	ctor  reflect.Value
	built bool
	fac   reflect.Value
	err   error
}

func (n *transientNode) value(c *Container, chain []Key) (reflect.Value, error) {
	if n.built {
		return n.fac, n.err
	}

	args, err := c.args(n.ctor.Type(), chain)
	n.built = true
	if err != nil {
		n.err = errors.Wrapf(err, "constructing %v", n.key)
		return reflect.Value{}, n.err
	}

	ctor := n.ctor
	n.fac = reflect.MakeFunc(n.key.Type, func([]reflect.Value) []reflect.Value {
		return ctor.Call(args)
	})
	return n.fac, nil
}

func (n *transientNode) String() string {
	return fmt.Sprintf("(transient) %v <= %v", n.key, n.ctor.Type())
}

// errorReturn extracts a non-nil trailing error from constructor results.
func errorReturn(out []reflect.Value) error {
	if len(out) == 0 {
		return nil
	}
	last := out[len(out)-1]
	if last.Type() != _errType {
		return nil
	}
	if err, _ := last.Interface().(error); err != nil {
		return err
	}
	return nil
}
