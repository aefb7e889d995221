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

package loom

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/strandlabs/loom/internal/graph"
	"github.com/strandlabs/loom/internal/loomreflect"
	"github.com/strandlabs/loom/loomevent"
)

// Provide registers constructors with the application container.
//
// Constructors are called lazily, the first time one of their outputs is
// needed, and at most once: every consumer shares the same instance. A
// constructor may return an error as its last result; the error fails
// whatever resolution triggered the call.
//
// Wrap a constructor in Annotated to bind its output under a name, or in
// Transient to bind a per-use factory instead of a singleton.
func Provide(constructors ...interface{}) Option {
	return provideOption{Targets: constructors}
}

type provideOption struct {
	Targets []interface{}
}

func (o provideOption) apply(app *App) {
	for _, target := range o.Targets {
		app.provides = append(app.provides, provide{Target: target})
	}
}

func (o provideOption) String() string {
	items := make([]string, len(o.Targets))
	for i, t := range o.Targets {
		items[i] = fnName(t)
	}
	return fmt.Sprintf("loom.Provide(%s)", strings.Join(items, ", "))
}

// provide is a single pending registration, recorded by the Provide and
// Supply options and applied during New.
type provide struct {
	Target   interface{}
	IsSupply bool
}

func (app *App) applyProvide(p provide) {
	if app.err != nil {
		return
	}

	target := p.Target
	var opts []graph.ProvideOption
	if a, ok := target.(Annotated); ok {
		if a.Name != "" {
			opts = append(opts, graph.Name(a.Name))
		}
		target = a.Target
	}
	if tr, ok := target.(transient); ok {
		opts = append(opts, graph.Transient())
		target = tr.Target
	}

	if p.IsSupply {
		err := app.container.Supply(target, opts...)
		app.log.LogEvent(&loomevent.Supplied{
			TypeName: typeName(target),
			Err:      err,
		})
		if err != nil {
			app.err = err
		}
		return
	}

	err := app.container.Provide(target, opts...)
	app.log.LogEvent(&loomevent.Provided{
		ConstructorName: fnName(target),
		OutputTypeNames: returnTypes(target),
		Err:             err,
	})
	if err != nil {
		app.err = errors.Wrapf(err, "providing %v", fnName(target))
	}
}

// fnName names a provide or invoke target for events and errors: the
// function's import-qualified name, or the value's type for non-functions.
func fnName(target interface{}) string {
	if target == nil {
		return "nil"
	}
	if reflect.TypeOf(target).Kind() == reflect.Func {
		return loomreflect.FuncName(target)
	}
	return typeName(target)
}

func typeName(target interface{}) string {
	if target == nil {
		return "nil"
	}
	return reflect.TypeOf(target).String()
}

func returnTypes(target interface{}) []string {
	if target == nil || reflect.TypeOf(target).Kind() != reflect.Func {
		return nil
	}
	return loomreflect.ReturnTypes(target)
}
