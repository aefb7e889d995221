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
	"time"

	"go.uber.org/multierr"

	"github.com/strandlabs/loom/loomevent"
)

// NopLogger discards all application events. Handy in tests that don't
// care about output.
var NopLogger = WithLogger(func() loomevent.Logger { return loomevent.NopLogger })

// An Option configures an App.
type Option interface {
	fmt.Stringer

	apply(*App)
}

// Options bundles a group of options together, so that libraries can expose
// their wiring as a single value.
func Options(opts ...Option) Option {
	return optionGroup(opts)
}

type optionGroup []Option

func (og optionGroup) apply(app *App) {
	for _, opt := range og {
		opt.apply(app)
	}
}

func (og optionGroup) String() string {
	return fmt.Sprintf("loom.Options(%v)", []Option(og))
}

// Error registers application-level errors, short-circuiting New: an App
// carrying an error fails Start without running invocations.
func Error(errs ...error) Option {
	return errorOption(errs)
}

type errorOption []error

func (errs errorOption) apply(app *App) {
	app.err = multierr.Append(app.err, multierr.Combine(errs...))
}

func (errs errorOption) String() string {
	return fmt.Sprintf("loom.Error(%v)", multierr.Combine(errs...))
}

// StartTimeout changes the deadline Run applies to application startup. The
// default is DefaultStartTimeout.
func StartTimeout(v time.Duration) Option {
	return startTimeoutOption(v)
}

type startTimeoutOption time.Duration

func (t startTimeoutOption) apply(app *App) {
	app.startTimeout = time.Duration(t)
}

func (t startTimeoutOption) String() string {
	return fmt.Sprintf("loom.StartTimeout(%v)", time.Duration(t))
}

// StopTimeout changes the deadline Run applies to application shutdown. The
// default is DefaultStopTimeout.
func StopTimeout(v time.Duration) Option {
	return stopTimeoutOption(v)
}

type stopTimeoutOption time.Duration

func (t stopTimeoutOption) apply(app *App) {
	app.stopTimeout = time.Duration(t)
}

func (t stopTimeoutOption) String() string {
	return fmt.Sprintf("loom.StopTimeout(%v)", time.Duration(t))
}

// WithLogger builds the application's event logger through the container,
// using dependencies registered with Provide and Supply. The constructor
// must return a loomevent.Logger.
//
//	loom.New(
//		loom.Provide(zap.NewProduction),
//		loom.WithLogger(func(log *zap.Logger) loomevent.Logger {
//			return &loomevent.ZapLogger{Logger: log}
//		}),
//	)
//
// Events emitted before the logger is built are buffered and replayed
// through it. If the constructor fails, the App falls back to the console
// logger and records the error.
func WithLogger(constructor interface{}) Option {
	return withLoggerOption{constructor: constructor}
}

type withLoggerOption struct {
	constructor interface{}
}

func (l withLoggerOption) apply(app *App) {
	app.logConstructor = l.constructor
}

func (l withLoggerOption) String() string {
	return fmt.Sprintf("loom.WithLogger(%v)", fnName(l.constructor))
}
