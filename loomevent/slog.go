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

package loomevent

import (
	"log/slog"
	"strings"
)

// SlogLogger is a Logger that routes events to a standard library
// structured logger.
type SlogLogger struct {
	Logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// LogEvent logs the given event to the underlying slog logger.
func (l *SlogLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Supplied:
		if e.Err != nil {
			l.Logger.Error("supply failed", "type", e.TypeName, "error", e.Err)
		} else {
			l.Logger.Info("supplied", "type", e.TypeName)
		}
	case *Provided:
		for _, rtype := range e.OutputTypeNames {
			l.Logger.Info("provided", "constructor", e.ConstructorName, "type", rtype)
		}
		if e.Err != nil {
			l.Logger.Error("provide failed", "constructor", e.ConstructorName, "error", e.Err)
		}
	case *Invoking:
		l.Logger.Info("invoking", "function", e.FunctionName)
	case *Invoked:
		if e.Err != nil {
			l.Logger.Error("invoke failed", "function", e.FunctionName, "error", e.Err)
		}
	case *HookExecuting:
		l.Logger.Info("hook executing",
			"method", e.Method, "callee", e.FunctionName, "caller", e.CallerName)
	case *HookExecuted:
		if e.Err != nil {
			l.Logger.Error("hook execute failed",
				"method", e.Method, "callee", e.FunctionName, "caller", e.CallerName,
				"error", e.Err)
		} else {
			l.Logger.Info("hook executed",
				"method", e.Method, "callee", e.FunctionName, "caller", e.CallerName,
				"runtime", e.Runtime.String())
		}
	case *Started:
		if e.Err != nil {
			l.Logger.Error("start failed", "error", e.Err)
		} else {
			l.Logger.Info("started")
		}
	case *Stopping:
		l.Logger.Info("received signal",
			"signal", strings.ToUpper(e.Signal.String()))
	case *Stopped:
		if e.Err != nil {
			l.Logger.Error("stop failed", "error", e.Err)
		}
	case *RollingBack:
		l.Logger.Error("start failed, rolling back", "error", e.StartErr)
	case *RolledBack:
		if e.Err != nil {
			l.Logger.Error("rollback failed", "error", e.Err)
		}
	case *LoggerInitialized:
		if e.Err != nil {
			l.Logger.Error("custom logger initialization failed", "error", e.Err)
		} else {
			l.Logger.Info("initialized custom loomevent.Logger",
				"constructor", e.ConstructorName)
		}
	}
}
