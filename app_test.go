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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/strandlabs/loom/internal/loomlog"
	"github.com/strandlabs/loom/loomevent"
)

func TestMain(m *testing.M) {
	// os/signal keeps a watcher goroutine alive once Notify has been
	// called; it is not a leak.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("os/signal.signal_recv"))
}

type appService struct{ name string }

func newAppService() *appService { return &appService{name: "svc"} }

type appRunner struct{ svc *appService }

func newAppRunner(svc *appService) *appRunner { return &appRunner{svc: svc} }

func TestNewApp(t *testing.T) {
	t.Run("constructors wire together", func(t *testing.T) {
		var r *appRunner
		app := New(
			Provide(newAppService, newAppRunner),
			Populate(&r),
		)
		require.NoError(t, app.Err())
		require.NotNil(t, r)
		assert.Equal(t, "svc", r.svc.name)
	})

	t.Run("singletons are shared", func(t *testing.T) {
		var seen []*appService
		app := New(
			Provide(newAppService),
			Invoke(func(s *appService) { seen = append(seen, s) }),
			Invoke(func(s *appService) { seen = append(seen, s) }),
		)
		require.NoError(t, app.Err())
		require.Len(t, seen, 2)
		assert.Same(t, seen[0], seen[1])
	})

	t.Run("invocations run in order", func(t *testing.T) {
		var order []string
		app := New(
			Invoke(func() { order = append(order, "first") }),
			Invoke(func() { order = append(order, "second") }),
		)
		require.NoError(t, app.Err())
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("constructor errors reach Err", func(t *testing.T) {
		fail := errors.New("great sadness")
		app := New(
			Provide(func() (*appService, error) { return nil, fail }),
			Invoke(func(*appService) {}),
		)
		require.ErrorIs(t, app.Err(), fail)
	})

	t.Run("invoke error halts later invocations", func(t *testing.T) {
		var ran bool
		app := New(
			Invoke(func() error { return errors.New("boom") }),
			Invoke(func() { ran = true }),
		)
		require.Error(t, app.Err())
		assert.False(t, ran)
	})

	t.Run("Error option short-circuits", func(t *testing.T) {
		fail := errors.New("module misconfigured")
		var ran bool
		app := New(
			Error(fail),
			Invoke(func() { ran = true }),
		)
		require.ErrorIs(t, app.Err(), fail)
		assert.False(t, ran)
		require.ErrorIs(t, app.Start(context.Background()), fail)
	})

	t.Run("missing dependency fails the invoke", func(t *testing.T) {
		app := New(
			Invoke(func(*appRunner) {}),
		)
		require.Error(t, app.Err())
		assert.Contains(t, app.Err().Error(), "no binding for *loom.appRunner")
	})
}

func TestSupplyAndAnnotated(t *testing.T) {
	t.Run("supplied values resolve", func(t *testing.T) {
		supplied := &appService{name: "prebuilt"}
		var got *appService
		app := New(
			Supply(supplied),
			Populate(&got),
		)
		require.NoError(t, app.Err())
		assert.Same(t, supplied, got)
	})

	t.Run("named bindings coexist", func(t *testing.T) {
		type params struct {
			In

			Main   *appService
			Backup *appService `name:"backup"`
		}
		var main, backup *appService
		app := New(
			Provide(newAppService),
			Provide(Annotated{
				Name:   "backup",
				Target: func() *appService { return &appService{name: "backup"} },
			}),
			Invoke(func(p params) {
				main, backup = p.Main, p.Backup
			}),
		)
		require.NoError(t, app.Err())
		assert.Equal(t, "svc", main.name)
		assert.Equal(t, "backup", backup.name)
	})

	t.Run("populate a named binding", func(t *testing.T) {
		var got *appService
		app := New(
			Provide(Annotated{
				Name:   "backup",
				Target: func() *appService { return &appService{name: "backup"} },
			}),
			Populate(Annotated{Name: "backup", Target: &got}),
		)
		require.NoError(t, app.Err())
		assert.Equal(t, "backup", got.name)
	})
}

func TestTransientBindings(t *testing.T) {
	app := New(
		Provide(Transient(newAppService)),
		Invoke(func(newService func() *appService) {
			a, b := newService(), newService()
			assert.NotSame(t, a, b)
		}),
	)
	require.NoError(t, app.Err())
}

func TestAppLifecycle(t *testing.T) {
	t.Run("hooks run on Start and Stop", func(t *testing.T) {
		var order []string
		app := New(
			Invoke(func(lc Lifecycle) {
				lc.Append(Hook{
					OnStart: func(context.Context) error {
						order = append(order, "start")
						return nil
					},
					OnStop: func(context.Context) error {
						order = append(order, "stop")
						return nil
					},
				})
			}),
		)
		require.NoError(t, app.Err())
		require.NoError(t, app.Start(context.Background()))
		require.NoError(t, app.Stop(context.Background()))
		assert.Equal(t, []string{"start", "stop"}, order)
	})

	t.Run("start failure rolls back started hooks", func(t *testing.T) {
		spy := new(loomlog.Spy)
		var rolledBack bool
		app := New(
			WithLogger(func() loomevent.Logger { return spy }),
			Invoke(func(lc Lifecycle) {
				lc.Append(Hook{
					OnStart: func(context.Context) error { return nil },
					OnStop: func(context.Context) error {
						rolledBack = true
						return nil
					},
				})
				lc.Append(Hook{
					OnStart: func(context.Context) error {
						return errors.New("no start for you")
					},
				})
			}),
		)
		require.NoError(t, app.Err())
		require.Error(t, app.Start(context.Background()))
		assert.True(t, rolledBack)

		types := spy.EventTypes()
		assert.Contains(t, types, "RollingBack")
		assert.Contains(t, types, "RolledBack")
		assert.Equal(t, "Started", types[len(types)-1])
	})
}

func TestWithLogger(t *testing.T) {
	t.Run("events are replayed through the custom logger", func(t *testing.T) {
		spy := new(loomlog.Spy)
		app := New(
			Provide(newAppService),
			WithLogger(func() loomevent.Logger { return spy }),
			Invoke(func(*appService) {}),
		)
		require.NoError(t, app.Err())

		types := spy.EventTypes()
		assert.Contains(t, types, "Provided")
		assert.Contains(t, types, "LoggerInitialized")
		assert.Contains(t, types, "Invoking")
		assert.Contains(t, types, "Invoked")
	})

	t.Run("logger dependencies come from the container", func(t *testing.T) {
		spy := new(loomlog.Spy)
		app := New(
			Supply(spy),
			WithLogger(func(s *loomlog.Spy) loomevent.Logger { return s }),
		)
		require.NoError(t, app.Err())
		assert.NotEmpty(t, spy.EventTypes())
	})

	t.Run("failing constructor falls back", func(t *testing.T) {
		fail := errors.New("no logger for you")
		app := New(
			WithLogger(func() (loomevent.Logger, error) { return nil, fail }),
		)
		require.ErrorIs(t, app.Err(), fail)
	})

	t.Run("wrong return type is rejected", func(t *testing.T) {
		app := New(
			WithLogger(func() string { return "not a logger" }),
		)
		require.Error(t, app.Err())
		assert.Contains(t, app.Err().Error(), "must return a loomevent.Logger")
	})
}

func TestShutdowner(t *testing.T) {
	t.Run("shutdown unblocks run with the exit code", func(t *testing.T) {
		var s Shutdowner
		app := New(NopLogger, Populate(&s))
		require.NoError(t, app.Err())

		require.NoError(t, s.Shutdown(ExitCode(2)))
		assert.Equal(t, 2, app.run(app.Done()))
	})

	t.Run("broadcast is replayed to late Done callers", func(t *testing.T) {
		var s Shutdowner
		app := New(NopLogger, Populate(&s))
		require.NoError(t, app.Err())
		require.NoError(t, s.Shutdown())

		select {
		case sig := <-app.Done():
			assert.NotNil(t, sig)
		case <-time.After(time.Second):
			t.Fatal("expected the shutdown signal to be replayed")
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("build errors exit non-zero", func(t *testing.T) {
		app := New(NopLogger, Error(errors.New("great sadness")))
		var exited int
		app.osExit = func(code int) { exited = code }
		app.Run()
		assert.Equal(t, 1, exited)
	})
}

func TestTimeouts(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		app := New()
		assert.Equal(t, DefaultStartTimeout, app.StartTimeout())
		assert.Equal(t, DefaultStopTimeout, app.StopTimeout())
	})

	t.Run("options override", func(t *testing.T) {
		app := New(
			StartTimeout(time.Minute),
			StopTimeout(30*time.Second),
		)
		assert.Equal(t, time.Minute, app.StartTimeout())
		assert.Equal(t, 30*time.Second, app.StopTimeout())
	})
}

func TestOptionStrings(t *testing.T) {
	tests := []struct {
		give Option
		want string
	}{
		{StartTimeout(time.Second), "loom.StartTimeout(1s)"},
		{StopTimeout(time.Minute), "loom.StopTimeout(1m0s)"},
		{Provide(newAppService), "loom.Provide(github.com/strandlabs/loom.newAppService())"},
		{Invoke(newAppRunner), "loom.Invoke(github.com/strandlabs/loom.newAppRunner())"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.give.String())
	}
}
