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
	"strings"

	"go.uber.org/zap"
)

// ZapLogger is a Logger that routes events to a Zap logger.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the underlying Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Supplied:
		if e.Err != nil {
			l.Logger.Error("supply failed",
				zap.String("type", e.TypeName),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("supplied", zap.String("type", e.TypeName))
		}
	case *Provided:
		for _, rtype := range e.OutputTypeNames {
			l.Logger.Info("provided",
				zap.String("constructor", e.ConstructorName),
				zap.String("type", rtype),
			)
		}
		if e.Err != nil {
			l.Logger.Error("provide failed",
				zap.String("constructor", e.ConstructorName),
				zap.Error(e.Err),
			)
		}
	case *Invoking:
		l.Logger.Info("invoking",
			zap.String("function", e.FunctionName))
	case *Invoked:
		if e.Err != nil {
			l.Logger.Error("invoke failed",
				zap.String("function", e.FunctionName),
				zap.Error(e.Err),
			)
		}
	case *HookExecuting:
		l.Logger.Info("hook executing",
			zap.String("method", e.Method),
			zap.String("callee", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *HookExecuted:
		if e.Err != nil {
			l.Logger.Error("hook execute failed",
				zap.String("method", e.Method),
				zap.String("callee", e.FunctionName),
				zap.String("caller", e.CallerName),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("hook executed",
				zap.String("method", e.Method),
				zap.String("callee", e.FunctionName),
				zap.String("caller", e.CallerName),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	case *Started:
		if e.Err != nil {
			l.Logger.Error("start failed", zap.Error(e.Err))
		} else {
			l.Logger.Info("started")
		}
	case *Stopping:
		l.Logger.Info("received signal",
			zap.String("signal", strings.ToUpper(e.Signal.String())))
	case *Stopped:
		if e.Err != nil {
			l.Logger.Error("stop failed", zap.Error(e.Err))
		}
	case *RollingBack:
		l.Logger.Error("start failed, rolling back", zap.Error(e.StartErr))
	case *RolledBack:
		if e.Err != nil {
			l.Logger.Error("rollback failed", zap.Error(e.Err))
		}
	case *LoggerInitialized:
		if e.Err != nil {
			l.Logger.Error("custom logger initialization failed", zap.Error(e.Err))
		} else {
			l.Logger.Info("initialized custom loomevent.Logger",
				zap.String("constructor", e.ConstructorName))
		}
	}
}
