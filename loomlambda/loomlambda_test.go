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

package loomlambda

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandlabs/loom"
)

type echoService struct{ prefix string }

func newEchoService() *echoService { return &echoService{prefix: "echo: "} }

type echoHandler struct{ svc *echoService }

func newEchoHandler(svc *echoService) *echoHandler { return &echoHandler{svc: svc} }

func (h *echoHandler) Invoke(_ context.Context, payload []byte) ([]byte, error) {
	return append([]byte(h.svc.prefix), payload...), nil
}

func TestBuild(t *testing.T) {
	t.Run("resolves the handler and starts the app", func(t *testing.T) {
		var started bool
		handler, app, err := build[*echoHandler](
			loom.Provide(newEchoService, newEchoHandler),
			loom.Invoke(func(lc loom.Lifecycle) {
				lc.Append(loom.Hook{
					OnStart: func(context.Context) error {
						started = true
						return nil
					},
				})
			}),
		)
		require.NoError(t, err)
		require.NotNil(t, handler)
		assert.True(t, started)

		out, err := handler.Invoke(context.Background(), []byte("hi"))
		require.NoError(t, err)
		assert.Equal(t, "echo: hi", string(out))

		require.NoError(t, app.Stop(context.Background()))
	})

	t.Run("missing handler binding fails the build", func(t *testing.T) {
		_, _, err := build[*echoHandler]()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no binding for *loomlambda.echoHandler")
	})

	t.Run("start failure is returned", func(t *testing.T) {
		fail := errors.New("no start for you")
		_, _, err := build[*echoHandler](
			loom.Provide(newEchoService, newEchoHandler),
			loom.Invoke(func(lc loom.Lifecycle) {
				lc.Append(loom.Hook{
					OnStart: func(context.Context) error { return fail },
				})
			}),
		)
		require.ErrorIs(t, err, fail)
	})

	t.Run("handlers are reused across invocations", func(t *testing.T) {
		handler, app, err := build[*echoHandler](
			loom.Provide(newEchoService, newEchoHandler),
		)
		require.NoError(t, err)
		defer func() { require.NoError(t, app.Stop(context.Background())) }()

		first, err := handler.Invoke(context.Background(), []byte("a"))
		require.NoError(t, err)
		second, err := handler.Invoke(context.Background(), []byte("a"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
