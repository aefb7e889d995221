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
)

// Populate resolves instances out of the container into the given pointers
// during New, after all other invocations have run. It is how code outside
// the App, such as a serverless runtime adapter or a test, gets hold of
// constructed objects:
//
//	var svc *Service
//	app := loom.New(
//		loom.Provide(NewService),
//		loom.Populate(&svc),
//	)
//
// Each target must be a non-nil pointer to a provided type. To populate a
// named binding, pass an Annotated whose Target is the pointer.
func Populate(targets ...interface{}) Option {
	return populateOption{Targets: targets}
}

type populateOption struct {
	Targets []interface{}
}

func (o populateOption) apply(app *App) {
	app.populates = append(app.populates, o.Targets...)
}

func (o populateOption) String() string {
	items := make([]string, len(o.Targets))
	for i, t := range o.Targets {
		items[i] = typeName(t)
	}
	return fmt.Sprintf("loom.Populate(%s)", strings.Join(items, ", "))
}

// populateTargetName names the type a populate target points at, for error
// messages.
func populateTargetName(target interface{}) string {
	t := reflect.TypeOf(target)
	if t != nil && t.Kind() == reflect.Ptr {
		return t.Elem().String()
	}
	return typeName(target)
}

func (app *App) executePopulates() {
	for _, target := range app.populates {
		if app.err != nil {
			return
		}

		name := ""
		if a, ok := target.(Annotated); ok {
			name = a.Name
			target = a.Target
		}
		if err := app.container.Resolve(target, name); err != nil {
			app.err = errors.Wrapf(err, "populating %v", populateTargetName(target))
		}
	}
}
