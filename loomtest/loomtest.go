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

// Package loomtest provides utilities for testing loom applications: an App
// wrapper that fails the test instead of returning errors, and a standalone
// test Lifecycle.
package loomtest

import (
	"bytes"
	"context"

	"github.com/strandlabs/loom"
	"github.com/strandlabs/loom/loomevent"
)

// TB is the subset of testing.TB that loomtest needs. *testing.T and
// *testing.B both satisfy it.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// App wraps a loom.App for tests: construction errors fail the test
// immediately, and RequireStart and RequireStop replace error-returning
// Start and Stop. Events are logged through the test's own log output.
type App struct {
	*loom.App

	tb TB
}

// New builds an App for the given test. Options are applied as in loom.New;
// pass your own loom.WithLogger to override the test logger.
func New(tb TB, opts ...loom.Option) *App {
	allOpts := make([]loom.Option, 0, len(opts)+1)
	allOpts = append(allOpts, loom.WithLogger(func() loomevent.Logger {
		return &loomevent.ConsoleLogger{W: tbWriter{tb}}
	}))
	allOpts = append(allOpts, opts...)

	app := loom.New(allOpts...)
	if err := app.Err(); err != nil {
		tb.Errorf("failed to build the application: %v", err)
		tb.FailNow()
	}
	return &App{App: app, tb: tb}
}

// RequireStart starts the App under its start timeout, failing the test on
// error. Returns the App to allow chaining with RequireStop:
//
//	defer app.RequireStart().RequireStop()
func (app *App) RequireStart() *App {
	ctx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()

	if err := app.Start(ctx); err != nil {
		app.tb.Errorf("application didn't start cleanly: %v", err)
		app.tb.FailNow()
	}
	return app
}

// RequireStop stops the App under its stop timeout, failing the test on
// error.
func (app *App) RequireStop() {
	ctx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()

	if err := app.Stop(ctx); err != nil {
		app.tb.Errorf("application didn't stop cleanly: %v", err)
		app.tb.FailNow()
	}
}

// tbWriter routes console events into the test log, keeping event output
// attached to the test that produced it.
type tbWriter struct {
	tb TB
}

func (w tbWriter) Write(p []byte) (int, error) {
	w.tb.Logf("%s", bytes.TrimRight(p, "\n"))
	return len(p), nil
}
