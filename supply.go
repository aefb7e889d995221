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
)

// Supply registers already-built values with the application container, as
// if constructors returning them had been provided and called. Each value
// is bound under its own concrete type.
//
// Wrap a value in Annotated to bind it under a name. Untyped nils and
// errors cannot be supplied.
func Supply(values ...interface{}) Option {
	return supplyOption{Targets: values}
}

type supplyOption struct {
	Targets []interface{}
}

func (o supplyOption) apply(app *App) {
	for _, target := range o.Targets {
		app.provides = append(app.provides, provide{Target: target, IsSupply: true})
	}
}

func (o supplyOption) String() string {
	items := make([]string, len(o.Targets))
	for i, t := range o.Targets {
		items[i] = typeName(t)
	}
	return fmt.Sprintf("loom.Supply(%s)", strings.Join(items, ", "))
}
