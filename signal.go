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
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ShutdownSignal describes why the application is shutting down: the OS
// signal received, or the synthetic signal broadcast by a Shutdowner, with
// the exit code Run should report.
type ShutdownSignal struct {
	Signal   os.Signal
	ExitCode int
}

func (sig ShutdownSignal) String() string {
	return fmt.Sprintf("%v", sig.Signal)
}

// signalReceivers fans shutdown signals out to every channel handed out by
// Done. OS signals are delivered by os/signal directly; Shutdowner
// broadcasts are relayed here.
//
// The zero value is ready to use; notify and stopNotify are overridable
// from tests.
type signalReceivers struct {
	m    sync.Mutex
	last *ShutdownSignal
	done []chan os.Signal

	notify     func(c chan<- os.Signal, sig ...os.Signal)
	stopNotify func(c chan<- os.Signal)
}

// Done returns a channel that receives shutdown signals. If a shutdown was
// already broadcast, the signal is replayed so that late callers do not
// block forever.
func (recv *signalReceivers) Done() chan os.Signal {
	recv.m.Lock()
	defer recv.m.Unlock()

	if recv.notify == nil {
		recv.notify = signal.Notify
	}

	ch := make(chan os.Signal, 1)
	recv.notify(ch, os.Interrupt, syscall.SIGTERM)
	if recv.last != nil {
		ch <- recv.last.Signal
	}
	recv.done = append(recv.done, ch)
	return ch
}

// Stop unregisters every Done channel from OS signal delivery, so that
// registrations don't pile up in os/signal across an App's lifetime. The
// channels stay subscribed to Shutdowner broadcasts.
func (recv *signalReceivers) Stop() {
	recv.m.Lock()
	defer recv.m.Unlock()

	if recv.stopNotify == nil {
		recv.stopNotify = signal.Stop
	}
	for _, ch := range recv.done {
		recv.stopNotify(ch)
	}
}

// Broadcast delivers the signal to every Done channel without blocking and
// remembers it for channels handed out later.
func (recv *signalReceivers) Broadcast(sig ShutdownSignal) error {
	recv.m.Lock()
	defer recv.m.Unlock()

	recv.last = &sig
	unsent := 0
	for _, ch := range recv.done {
		select {
		case ch <- sig.Signal:
		default:
			unsent++
		}
	}
	if unsent > 0 {
		return &unsentSignalError{Signal: sig, Unsent: unsent, Total: len(recv.done)}
	}
	return nil
}

func (recv *signalReceivers) lastSignal() *ShutdownSignal {
	recv.m.Lock()
	defer recv.m.Unlock()
	return recv.last
}

type unsentSignalError struct {
	Signal ShutdownSignal
	Unsent int
	Total  int
}

func (err *unsentSignalError) Error() string {
	return fmt.Sprintf("send %v signal: %v/%v channels are blocked", err.Signal, err.Unsent, err.Total)
}
