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
	"strings"
)

// DuplicateBindingError is returned when a constructor or value is
// registered for a key that already has a binding.
type DuplicateBindingError struct {
	Key Key
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("duplicate binding for %v", e.Key)
}

// MissingBindingError is returned when resolution requires a key that has no
// binding. Chain holds the keys that were being resolved when the miss was
// discovered, outermost first.
type MissingBindingError struct {
	Key   Key
	Chain []Key
}

func (e *MissingBindingError) Error() string {
	if len(e.Chain) == 0 {
		return fmt.Sprintf("no binding for %v", e.Key)
	}
	return fmt.Sprintf("no binding for %v (while resolving %v)", e.Key, e.Chain[len(e.Chain)-1])
}

// CycleError is returned when a constructor depends, directly or through
// intermediaries, on its own output. Chain holds the full cycle, with the
// repeated key at both ends.
type CycleError struct {
	Chain []Key
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Chain))
	for i, k := range e.Chain {
		parts[i] = k.String()
	}
	return "dependency cycle detected: " + strings.Join(parts, " -> ")
}
