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

import "syscall"

// A Shutdowner lets application code stop a running App from inside the
// container, without reaching for os.Exit. It is always available for
// injection.
type Shutdowner interface {
	// Shutdown broadcasts a termination signal to every channel returned
	// by App.Done, unblocking Run. It does not wait for the App to stop.
	Shutdown(...ShutdownOption) error
}

// A ShutdownOption modifies the broadcast signal.
type ShutdownOption interface {
	apply(*shutdowner)
}

// ExitCode sets the exit code Run reports after a Shutdowner-initiated
// shutdown. The default is 0.
func ExitCode(code int) ShutdownOption {
	return exitCodeOption(code)
}

type exitCodeOption int

func (c exitCodeOption) apply(s *shutdowner) {
	s.exitCode = int(c)
}

type shutdowner struct {
	app      *App
	exitCode int
}

var _ Shutdowner = (*shutdowner)(nil)

func (s *shutdowner) Shutdown(opts ...ShutdownOption) error {
	for _, opt := range opts {
		opt.apply(s)
	}
	return s.app.receivers.Broadcast(ShutdownSignal{
		Signal:   syscall.SIGTERM,
		ExitCode: s.exitCode,
	})
}
