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

	"github.com/strandlabs/loom"
	"github.com/strandlabs/loom/internal/lifecycle"
	"github.com/strandlabs/loom/loomevent"
)

// Lifecycle is a loom.Lifecycle for unit tests that exercise lifecycle
// hooks without building a whole App.
type Lifecycle struct {
	tb TB
	lc *lifecycle.Lifecycle
}

var _ loom.Lifecycle = (*Lifecycle)(nil)

// NewLifecycle builds a Lifecycle for the given test.
func NewLifecycle(tb TB) *Lifecycle {
	return &Lifecycle{
		tb: tb,
		lc: lifecycle.New(loomevent.NopLogger, nil),
	}
}

// Append adds a hook, exactly as the Lifecycle injected into an App would.
func (l *Lifecycle) Append(h loom.Hook) {
	l.lc.Append(lifecycle.Hook{
		OnStart: h.OnStart,
		OnStop:  h.OnStop,
	})
}

// Start runs the appended OnStart hooks in order.
func (l *Lifecycle) Start(ctx context.Context) error {
	return l.lc.Start(ctx)
}

// Stop runs the OnStop hooks of started hooks in reverse order.
func (l *Lifecycle) Stop(ctx context.Context) error {
	return l.lc.Stop(ctx)
}

// RequireStart calls Start with a background context, failing the test on
// error.
func (l *Lifecycle) RequireStart() *Lifecycle {
	if err := l.Start(context.Background()); err != nil {
		l.tb.Errorf("lifecycle didn't start cleanly: %v", err)
		l.tb.FailNow()
	}
	return l
}

// RequireStop calls Stop with a background context, failing the test on
// error.
func (l *Lifecycle) RequireStop() {
	if err := l.Stop(context.Background()); err != nil {
		l.tb.Errorf("lifecycle didn't stop cleanly: %v", err)
		l.tb.FailNow()
	}
}
