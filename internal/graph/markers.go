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

import "reflect"

// In marks a parameter struct. When a constructor or invoked function takes
// a struct embedding In, the container fills its exported fields
// individually instead of looking for a binding of the struct type itself.
//
// Fields honor the `name` tag for named bindings and `optional:"true"` to
// tolerate a missing binding, leaving the field zero.
type In struct{}

// Out marks a result struct. When a constructor returns a struct embedding
// Out, each exported field becomes its own binding instead of the struct
// itself. Fields honor the `name` tag.
type Out struct{}

var (
	_inType  = reflect.TypeOf(In{})
	_outType = reflect.TypeOf(Out{})
)

func embedsIn(t reflect.Type) bool  { return embedsMarker(t, _inType) }
func embedsOut(t reflect.Type) bool { return embedsMarker(t, _outType) }

func embedsMarker(t reflect.Type, marker reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type == marker {
			return true
		}
	}
	return false
}
