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

package loomlog

import (
	"sync"

	"github.com/strandlabs/loom/loomevent"
)

// Buffer holds events emitted before the application's real logger exists.
// Once Connect is called, buffered events are flushed to the underlying
// logger and later events pass straight through.
type Buffer struct {
	mu     sync.Mutex
	events []loomevent.Event
	logger loomevent.Logger
}

var _ loomevent.Logger = (*Buffer)(nil)

// LogEvent buffers the event, or forwards it if a logger is connected.
func (b *Buffer) LogEvent(event loomevent.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.logger == nil {
		b.events = append(b.events, event)
		return
	}
	b.logger.LogEvent(event)
}

// Connect flushes all buffered events to the given logger and forwards
// everything that follows.
func (b *Buffer) Connect(logger loomevent.Logger) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logger = logger
	for _, e := range b.events {
		logger.LogEvent(e)
	}
	b.events = nil
}
