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
	"strings"

	"github.com/pkg/errors"

	"github.com/strandlabs/loom/loomevent"
)

// Invoke registers functions that run eagerly during New, in registration
// order, with their parameters resolved from the container. Invocations
// force the relevant slice of the graph to be constructed, so this is where
// applications root their object graph and append lifecycle hooks.
//
// If an invoked function's last return value is a non-nil error, New stops
// and records it; remaining invocations do not run.
func Invoke(funcs ...interface{}) Option {
	return invokeOption{Targets: funcs}
}

type invokeOption struct {
	Targets []interface{}
}

func (o invokeOption) apply(app *App) {
	for _, target := range o.Targets {
		app.invokes = append(app.invokes, invoke{Target: target, Name: fnName(target)})
	}
}

func (o invokeOption) String() string {
	items := make([]string, len(o.Targets))
	for i, t := range o.Targets {
		items[i] = fnName(t)
	}
	return fmt.Sprintf("loom.Invoke(%s)", strings.Join(items, ", "))
}

type invoke struct {
	Target interface{}
	Name   string
}

func (app *App) executeInvokes() {
	for _, i := range app.invokes {
		if app.err != nil {
			return
		}
		app.log.LogEvent(&loomevent.Invoking{FunctionName: i.Name})
		err := app.container.Invoke(i.Target)
		app.log.LogEvent(&loomevent.Invoked{FunctionName: i.Name, Err: err})
		if err != nil {
			app.err = errors.Wrapf(err, "invoking %v", i.Name)
		}
	}
}
