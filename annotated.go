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

// Annotated binds a constructor's output, or a supplied value, under a name
// so that several bindings of the same type can coexist. Consumers select a
// named binding with the `name` tag on a parameter struct field:
//
//	loom.Provide(loom.Annotated{
//		Name:   "replica",
//		Target: NewReplicaDB,
//	})
//
//	type Params struct {
//		loom.In
//
//		Replica *sql.DB `name:"replica"`
//	}
type Annotated struct {
	// Name of the binding.
	Name string

	// Target is the constructor (for Provide) or value (for Supply) to
	// bind.
	Target interface{}
}

func (a Annotated) String() string {
	return fmt.Sprintf("loom.Annotated{Name: %q, Target: %v}", a.Name, fnName(a.Target))
}
