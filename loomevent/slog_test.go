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
	"bytes"
	"errors"
	"log/slog"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLogger(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  []string
	}{
		{
			name:  "Supplied",
			event: &Supplied{TypeName: "*bytes.Buffer"},
			want:  []string{"supplied", "type=*bytes.Buffer"},
		},
		{
			name: "Provided",
			event: &Provided{
				ConstructorName: "main.NewService()",
				OutputTypeNames: []string{"*main.Service"},
			},
			want: []string{"provided", "constructor=main.NewService()", "type=*main.Service"},
		},
		{
			name:  "Invoked error",
			event: &Invoked{FunctionName: "main.setup()", Err: errors.New("boom")},
			want:  []string{"invoke failed", "error=boom", "level=ERROR"},
		},
		{
			name: "HookExecuting",
			event: &HookExecuting{
				Method:       "OnStart",
				FunctionName: "hook.onStart",
				CallerName:   "main.main",
			},
			want: []string{"hook executing", "method=OnStart", "callee=hook.onStart"},
		},
		{
			name:  "Started",
			event: &Started{},
			want:  []string{"started"},
		},
		{
			name:  "Stopping",
			event: &Stopping{Signal: syscall.SIGINT},
			want:  []string{"received signal", "signal=INTERRUPT"},
		},
		{
			name:  "RollingBack",
			event: &RollingBack{StartErr: errors.New("could not start")},
			want:  []string{"start failed, rolling back", "could not start"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&buf, nil))
			(&SlogLogger{Logger: log}).LogEvent(tt.event)

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
