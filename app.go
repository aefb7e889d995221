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
	"context"
	"os"
	"reflect"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/strandlabs/loom/internal/graph"
	"github.com/strandlabs/loom/internal/lifecycle"
	"github.com/strandlabs/loom/internal/loomclock"
	"github.com/strandlabs/loom/internal/loomlog"
	"github.com/strandlabs/loom/loomevent"
)

// DefaultStartTimeout is the deadline Run applies to application startup
// unless overridden with the StartTimeout option.
const DefaultStartTimeout = 15 * time.Second

// DefaultStopTimeout is the deadline Run applies to application shutdown
// unless overridden with the StopTimeout option.
const DefaultStopTimeout = 5 * time.Second

// An App is a built application: a container of bindings, an executed set
// of invocations, and a lifecycle ready to start.
//
// Two bindings are always present: Lifecycle, for appending start and stop
// hooks, and Shutdowner, for stopping a running App from the inside.
type App struct {
	err       error
	container *graph.Container
	lifecycle *lifecycleWrapper
	receivers signalReceivers

	provides  []provide
	invokes   []invoke
	populates []interface{}

	log            loomevent.Logger
	fallbackLogger loomevent.Logger
	logConstructor interface{}

	clock        loomclock.Clock
	startTimeout time.Duration
	stopTimeout  time.Duration

	// osExit is swapped out in tests.
	osExit func(code int)
}

// New builds an App from the given options: registrations are bound into
// the container, the custom logger (if any) is constructed, and the
// invocations run in order. Errors along the way don't panic; they're
// recorded on the App, reported by Err, and fail Start.
func New(opts ...Option) *App {
	app := &App{
		container:    graph.New(),
		log:          &loomevent.ConsoleLogger{W: os.Stderr},
		clock:        loomclock.System,
		startTimeout: DefaultStartTimeout,
		stopTimeout:  DefaultStopTimeout,
		osExit:       os.Exit,
	}
	for _, opt := range opts {
		opt.apply(app)
	}

	// Events emitted before a custom logger exists are buffered and
	// replayed through it once it's built.
	var buffer *loomlog.Buffer
	if app.logConstructor != nil {
		buffer = new(loomlog.Buffer)
		app.fallbackLogger, app.log = app.log, buffer
	}

	app.lifecycle = &lifecycleWrapper{lifecycle.New(app.log, app.clock)}

	for _, bind := range []interface{}{
		func() Lifecycle { return app.lifecycle },
		func() Shutdowner { return &shutdowner{app: app} },
	} {
		if err := app.container.Provide(bind); err != nil {
			app.err = multierr.Append(app.err, err)
		}
	}

	for _, p := range app.provides {
		app.applyProvide(p)
	}
	app.constructCustomLogger(buffer)
	app.executeInvokes()
	app.executePopulates()
	return app
}

var _loggerType = reflect.TypeOf((*loomevent.Logger)(nil)).Elem()

func (app *App) constructCustomLogger(buffer *loomlog.Buffer) {
	if app.logConstructor == nil {
		return
	}
	ctor := app.logConstructor
	fallback := app.fallbackLogger
	app.fallbackLogger = nil

	fail := func(err error) {
		app.err = multierr.Append(app.err, err)
		app.log = fallback
		buffer.Connect(fallback)
		app.log.LogEvent(&loomevent.LoggerInitialized{
			ConstructorName: fnName(ctor),
			Err:             err,
		})
	}

	t := reflect.TypeOf(ctor)
	if t == nil || t.Kind() != reflect.Func || t.NumOut() == 0 || t.Out(0) != _loggerType {
		fail(errors.Errorf("logger constructors must return a loomevent.Logger, got %v", fnName(ctor)))
		return
	}
	if err := app.container.Provide(ctor); err != nil {
		fail(err)
		return
	}
	var logger loomevent.Logger
	if err := app.container.Resolve(&logger, ""); err != nil {
		fail(errors.Wrapf(err, "constructing logger with %v", fnName(ctor)))
		return
	}

	app.log = logger
	buffer.Connect(logger)
	app.log.LogEvent(&loomevent.LoggerInitialized{ConstructorName: fnName(ctor)})
}

// Err reports any error encountered while building the App: a failed
// registration, a failed invocation, or an Error option. Apps carrying an
// error refuse to start.
func (app *App) Err() error {
	return app.err
}

// StartTimeout reports the deadline Run applies to Start.
func (app *App) StartTimeout() time.Duration {
	return app.startTimeout
}

// StopTimeout reports the deadline Run applies to Stop.
func (app *App) StopTimeout() time.Duration {
	return app.stopTimeout
}

// Done returns a channel that receives a signal when the application is
// asked to shut down, either by the OS (SIGINT, SIGTERM) or by a
// Shutdowner. Each call returns a fresh channel.
func (app *App) Done() <-chan os.Signal {
	return app.receivers.Done()
}

// Start runs the application's OnStart hooks in append order, halting at
// the first error. If a hook fails, the hooks that already started are
// rolled back before Start returns.
func (app *App) Start(ctx context.Context) (err error) {
	defer func() {
		app.log.LogEvent(&loomevent.Started{Err: err})
	}()

	if app.err != nil {
		return app.err
	}
	if err := app.lifecycle.Start(ctx); err != nil {
		app.log.LogEvent(&loomevent.RollingBack{StartErr: err})
		// The start context may already be past its deadline; rollback
		// runs on a fresh one so cleanup still happens.
		stopErr := app.lifecycle.Stop(context.Background())
		app.log.LogEvent(&loomevent.RolledBack{Err: stopErr})
		if stopErr != nil {
			return multierr.Append(err, stopErr)
		}
		return err
	}
	return nil
}

// Stop runs the application's OnStop hooks in reverse order. Cleanup is
// best-effort: all hooks run even if some fail, and their errors are
// combined.
func (app *App) Stop(ctx context.Context) (err error) {
	defer func() {
		app.log.LogEvent(&loomevent.Stopped{Err: err})
	}()
	defer app.receivers.Stop()
	return app.lifecycle.Stop(ctx)
}

// Run starts the application, blocks until it is told to shut down, then
// stops it. Start and Stop run under their respective timeouts. The
// process exits non-zero if either phase fails, or with the exit code
// given to the Shutdowner.
func (app *App) Run() {
	if code := app.run(app.Done()); code != 0 {
		app.osExit(code)
	}
}

func (app *App) run(done <-chan os.Signal) int {
	startCtx, cancel := context.WithTimeout(context.Background(), app.startTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return 1
	}

	sig := <-done
	app.log.LogEvent(&loomevent.Stopping{Signal: sig})

	exitCode := 0
	if last := app.receivers.lastSignal(); last != nil {
		exitCode = last.ExitCode
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.stopTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return 1
	}
	return exitCode
}
