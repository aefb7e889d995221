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

// Package loomreflect holds the reflection helpers shared by the container
// and the event loggers.
package loomreflect

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// ReturnTypes takes a func and returns the string forms of its non-error
// return types.
func ReturnTypes(fn interface{}) []string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil
	}

	t := v.Type()
	rtypes := make([]string, 0, t.NumOut())
	for i := 0; i < t.NumOut(); i++ {
		if !IsError(t.Out(i)) {
			rtypes = append(rtypes, t.Out(i).String())
		}
	}
	return rtypes
}

// FuncName returns a formatted name for the given func value.
func FuncName(fn interface{}) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return fmt.Sprintf("%v", fn)
	}

	name := runtime.FuncForPC(v.Pointer()).Name()
	return sanitizeFuncName(name) + "()"
}

// Caller ascends the call stack and returns the name of the first function
// outside of this module. It identifies the code that appended a lifecycle
// hook or registered a binding.
func Caller() string {
	// Ascend at most 8 frames looking for a caller outside loom.
	pcs := make([]uintptr, 8)

	// Don't include runtime.Callers or this frame.
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return "n/a"
	}

	frames := runtime.CallersFrames(pcs[:n])
	for f, more := frames.Next(); ; f, more = frames.Next() {
		if !shouldIgnoreFrame(f) {
			return f.Function
		}
		if !more {
			break
		}
	}
	return "n/a"
}

// IsError reports whether the type implements the error interface.
func IsError(t reflect.Type) bool {
	errInterface := reflect.TypeOf((*error)(nil)).Elem()
	return t.Implements(errInterface)
}

// sanitizeFuncName trims the trailing suffixes the runtime attaches to
// closures and method values (-fm, .funcN).
func sanitizeFuncName(name string) string {
	if strings.HasSuffix(name, "-fm") {
		name = strings.TrimSuffix(name, "-fm")
	}
	if i := strings.LastIndex(name, ".func"); i > 0 {
		tail := name[i+len(".func"):]
		if isDigits(tail) {
			name = name[:i]
		}
	}
	return name
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Ascend the call stack until we leave loom production code. This avoids
// hard-coding a frame skip, which keeps Caller correct even when it's
// wrapped.
func shouldIgnoreFrame(f runtime.Frame) bool {
	if strings.Contains(f.File, "_test.go") {
		return false
	}
	if strings.Contains(f.File, "strandlabs/loom") {
		return true
	}
	return false
}
