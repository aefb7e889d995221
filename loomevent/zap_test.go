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
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	someError := errors.New("some error")

	tests := []struct {
		name        string
		event       Event
		wantMessage string
		wantFields  map[string]interface{}
	}{
		{
			name:        "Supplied",
			event:       &Supplied{TypeName: "*bytes.Buffer"},
			wantMessage: "supplied",
			wantFields: map[string]interface{}{
				"type": "*bytes.Buffer",
			},
		},
		{
			name: "Provided",
			event: &Provided{
				ConstructorName: "main.NewService()",
				OutputTypeNames: []string{"*main.Service"},
			},
			wantMessage: "provided",
			wantFields: map[string]interface{}{
				"constructor": "main.NewService()",
				"type":        "*main.Service",
			},
		},
		{
			name:        "Invoking",
			event:       &Invoking{FunctionName: "main.setup()"},
			wantMessage: "invoking",
			wantFields: map[string]interface{}{
				"function": "main.setup()",
			},
		},
		{
			name:        "Invoked error",
			event:       &Invoked{FunctionName: "main.setup()", Err: someError},
			wantMessage: "invoke failed",
			wantFields: map[string]interface{}{
				"function": "main.setup()",
				"error":    "some error",
			},
		},
		{
			name: "HookExecuting",
			event: &HookExecuting{
				Method:       "OnStop",
				FunctionName: "hook.onStop",
				CallerName:   "bytes.NewBuffer",
			},
			wantMessage: "hook executing",
			wantFields: map[string]interface{}{
				"method": "OnStop",
				"callee": "hook.onStop",
				"caller": "bytes.NewBuffer",
			},
		},
		{
			name: "HookExecuted",
			event: &HookExecuted{
				Method:       "OnStart",
				FunctionName: "hook.onStart",
				CallerName:   "bytes.NewBuffer",
				Runtime:      time.Millisecond,
			},
			wantMessage: "hook executed",
			wantFields: map[string]interface{}{
				"method":  "OnStart",
				"callee":  "hook.onStart",
				"caller":  "bytes.NewBuffer",
				"runtime": "1ms",
			},
		},
		{
			name:        "Started",
			event:       &Started{},
			wantMessage: "started",
			wantFields:  map[string]interface{}{},
		},
		{
			name:        "Started error",
			event:       &Started{Err: someError},
			wantMessage: "start failed",
			wantFields: map[string]interface{}{
				"error": "some error",
			},
		},
		{
			name:        "Stopping",
			event:       &Stopping{Signal: syscall.SIGTERM},
			wantMessage: "received signal",
			wantFields: map[string]interface{}{
				"signal": "TERMINATED",
			},
		},
		{
			name:        "RollingBack",
			event:       &RollingBack{StartErr: someError},
			wantMessage: "start failed, rolling back",
			wantFields: map[string]interface{}{
				"error": "some error",
			},
		},
		{
			name:        "LoggerInitialized",
			event:       &LoggerInitialized{ConstructorName: "main.newLogger()"},
			wantMessage: "initialized custom loomevent.Logger",
			wantFields: map[string]interface{}{
				"constructor": "main.newLogger()",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, observed := observer.New(zapcore.DebugLevel)
			(&ZapLogger{Logger: zap.New(core)}).LogEvent(tt.event)

			logs := observed.TakeAll()
			require.Len(t, logs, 1)
			got := logs[0]

			assert.Equal(t, tt.wantMessage, got.Message)

			fields := make(map[string]interface{}, len(got.Context))
			for _, f := range got.Context {
				if f.Type == zapcore.ErrorType {
					fields[f.Key] = f.Interface.(error).Error()
					continue
				}
				fields[f.Key] = f.String
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}
