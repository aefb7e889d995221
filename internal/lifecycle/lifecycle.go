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

// Package lifecycle coordinates application start and stop hooks.
package lifecycle

import (
	"context"

	"go.uber.org/multierr"

	"github.com/strandlabs/loom/internal/loomclock"
	"github.com/strandlabs/loom/internal/loomreflect"
	"github.com/strandlabs/loom/loomevent"
)

// A Hook is a pair of start and stop callbacks, either of which can be nil,
// plus the name of the function that appended it.
type Hook struct {
	OnStart func(context.Context) error
	OnStop  func(context.Context) error
	caller  string
}

// Lifecycle runs the application's start and stop hooks in order.
//
// It is not safe for concurrent use; loom serializes access to it.
type Lifecycle struct {
	clock      loomclock.Clock
	log        loomevent.Logger
	hooks      []Hook
	numStarted int
}

// New constructs a new Lifecycle that reports hook execution to the given
// logger.
func New(log loomevent.Logger, clock loomclock.Clock) *Lifecycle {
	if log == nil {
		log = loomevent.NopLogger
	}
	if clock == nil {
		clock = loomclock.System
	}
	return &Lifecycle{log: log, clock: clock}
}

// Append adds a Hook to the lifecycle, recording its caller.
func (l *Lifecycle) Append(hook Hook) {
	hook.caller = loomreflect.Caller()
	l.hooks = append(l.hooks, hook)
}

// Start runs all OnStart hooks in append order, returning immediately on
// the first error. Hooks that already started stay counted so that Stop can
// roll them back.
func (l *Lifecycle) Start(ctx context.Context) error {
	for _, hook := range l.hooks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if hook.OnStart != nil {
			if err := l.runHook(ctx, hook.OnStart, hook.caller, "OnStart"); err != nil {
				return err
			}
		}
		l.numStarted++
	}
	return nil
}

// Stop runs the OnStop hooks whose OnStart counterpart succeeded, in
// reverse order. Cleanup is best-effort: execution continues past hook
// errors and the errors are combined.
func (l *Lifecycle) Stop(ctx context.Context) error {
	var errs []error
	for ; l.numStarted > 0; l.numStarted-- {
		if err := ctx.Err(); err != nil {
			return multierr.Append(multierr.Combine(errs...), err)
		}
		hook := l.hooks[l.numStarted-1]
		if hook.OnStop == nil {
			continue
		}
		if err := l.runHook(ctx, hook.OnStop, hook.caller, "OnStop"); err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}

func (l *Lifecycle) runHook(ctx context.Context, fn func(context.Context) error, caller, method string) error {
	name := loomreflect.FuncName(fn)
	l.log.LogEvent(&loomevent.HookExecuting{
		FunctionName: name,
		CallerName:   caller,
		Method:       method,
	})

	begin := l.clock.Now()
	err := fn(ctx)
	l.log.LogEvent(&loomevent.HookExecuted{
		FunctionName: name,
		CallerName:   caller,
		Method:       method,
		Runtime:      l.clock.Since(begin),
		Err:          err,
	})
	return err
}
