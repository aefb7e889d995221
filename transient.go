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

import "fmt"

// Transient marks a constructor passed to Provide as producing a fresh
// instance per use instead of a shared singleton. Consumers depend on a
// factory function with the constructor's return signature:
//
//	loom.Provide(loom.Transient(NewBuffer))
//
//	loom.Invoke(func(newBuffer func() *Buffer) {
//		a, b := newBuffer(), newBuffer() // a != b
//	})
//
// The factory's own dependencies are still resolved once, when the factory
// is first requested.
func Transient(constructor interface{}) interface{} {
	return transient{Target: constructor}
}

type transient struct {
	Target interface{}
}

func (t transient) String() string {
	return fmt.Sprintf("loom.Transient(%v)", fnName(t.Target))
}
