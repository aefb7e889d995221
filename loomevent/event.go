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

package loomevent

import (
	"os"
	"time"
)

// Event is emitted by loom as it registers bindings, resolves them, and
// walks the application lifecycle.
type Event interface {
	event() // restricts implementations to this package
}

// Passing events by pointer keeps them comparable as map keys should we
// ever need to hash them.
func (*Supplied) event()          {}
func (*Provided) event()          {}
func (*Invoking) event()          {}
func (*Invoked) event()           {}
func (*HookExecuting) event()     {}
func (*HookExecuted) event()      {}
func (*Started) event()           {}
func (*Stopping) event()          {}
func (*Stopped) event()           {}
func (*RollingBack) event()       {}
func (*RolledBack) event()        {}
func (*LoggerInitialized) event() {}

// Supplied is emitted when a pre-built value is bound into the container.
type Supplied struct {
	// TypeName is the name of the supplied value's type.
	TypeName string
	// Err is non-nil if the value could not be bound.
	Err error
}

// Provided is emitted when a constructor is bound into the container.
type Provided struct {
	// ConstructorName is the name of the bound constructor.
	ConstructorName string
	// OutputTypeNames lists the types the constructor produces.
	OutputTypeNames []string
	// Err is non-nil if the constructor could not be bound.
	Err error
}

// Invoking is emitted before a function passed to Invoke runs.
type Invoking struct {
	FunctionName string
}

// Invoked is emitted after a function passed to Invoke has run.
type Invoked struct {
	FunctionName string
	Err          error
}

// HookExecuting is emitted before a lifecycle hook runs.
type HookExecuting struct {
	// FunctionName is the name of the hook function.
	FunctionName string
	// CallerName is the name of the function that appended the hook.
	CallerName string
	// Method is either "OnStart" or "OnStop".
	Method string
}

// HookExecuted is emitted after a lifecycle hook has run.
type HookExecuted struct {
	FunctionName string
	CallerName   string
	Method       string
	Runtime      time.Duration
	Err          error
}

// Started is emitted once the application has finished starting, whether
// successfully or not.
type Started struct{ Err error }

// Stopping is emitted when the application begins to shut down in response
// to a signal.
type Stopping struct{ Signal os.Signal }

// Stopped is emitted once the application has finished stopping.
type Stopped struct{ Err error }

// RollingBack is emitted when a start failure triggers the rollback of the
// hooks that already started.
type RollingBack struct{ StartErr error }

// RolledBack is emitted after the rollback has run.
type RolledBack struct{ Err error }

// LoggerInitialized is emitted after the custom logger constructor given to
// WithLogger has run.
type LoggerInitialized struct {
	ConstructorName string
	Err             error
}
