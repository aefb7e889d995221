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

package loomtest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandlabs/loom"
)

// fakeTB records failures instead of stopping the test, so we can assert
// on the failure paths.
type fakeTB struct {
	testing.TB

	failures int
	fatal    bool
}

func (t *fakeTB) Logf(string, ...interface{})   {}
func (t *fakeTB) Errorf(string, ...interface{}) { t.failures++ }
func (t *fakeTB) FailNow()                      { t.fatal = true }

func TestApp(t *testing.T) {
	t.Run("start and stop", func(t *testing.T) {
		var started, stopped bool
		app := New(t,
			loom.Invoke(func(lc loom.Lifecycle) {
				lc.Append(loom.Hook{
					OnStart: func(context.Context) error {
						started = true
						return nil
					},
					OnStop: func(context.Context) error {
						stopped = true
						return nil
					},
				})
			}),
		)

		app.RequireStart().RequireStop()
		assert.True(t, started)
		assert.True(t, stopped)
	})

	t.Run("build failure fails the test", func(t *testing.T) {
		tb := &fakeTB{TB: t}
		New(tb, loom.Error(errors.New("great sadness")))
		assert.Equal(t, 1, tb.failures)
		assert.True(t, tb.fatal)
	})

	t.Run("start failure fails the test", func(t *testing.T) {
		tb := &fakeTB{TB: t}
		app := New(tb,
			loom.Invoke(func(lc loom.Lifecycle) {
				lc.Append(loom.Hook{
					OnStart: func(context.Context) error {
						return errors.New("no start for you")
					},
				})
			}),
		)
		app.RequireStart()
		assert.Equal(t, 1, tb.failures)
		assert.True(t, tb.fatal)
	})
}

func TestLifecycle(t *testing.T) {
	t.Run("hooks run in order", func(t *testing.T) {
		lc := NewLifecycle(t)

		var order []string
		lc.Append(loom.Hook{
			OnStart: func(context.Context) error {
				order = append(order, "start")
				return nil
			},
			OnStop: func(context.Context) error {
				order = append(order, "stop")
				return nil
			},
		})

		lc.RequireStart().RequireStop()
		assert.Equal(t, []string{"start", "stop"}, order)
	})

	t.Run("stop failure fails the test", func(t *testing.T) {
		tb := &fakeTB{TB: t}
		lc := NewLifecycle(tb)
		lc.Append(loom.Hook{
			OnStart: func(context.Context) error { return nil },
			OnStop: func(context.Context) error {
				return errors.New("no stop for you")
			},
		})

		lc.RequireStart()
		require.Equal(t, 0, tb.failures)
		lc.RequireStop()
		assert.Equal(t, 1, tb.failures)
	})
}
