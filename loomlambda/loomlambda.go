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

// Package loomlambda runs a loom application on AWS Lambda: the object
// graph is built once during the cold start, the handler is resolved from
// the container, and every invocation reuses the same instances.
package loomlambda

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/strandlabs/loom"
)

// Start builds an application from the given options, resolves a handler
// of type H from its container, starts the application, and hands the
// handler to the Lambda runtime. It is the serverless counterpart of
// loom's App.Run and, like it, never returns:
//
//	func main() {
//		loomlambda.Start[*Runner](
//			loom.Provide(LoadConfig, NewService, NewRunner),
//		)
//	}
//
// H must be provided in the container and implement lambda.Handler.
// Handlers that need per-invocation state should depend on transient
// factories; everything resolved directly is shared across invocations.
//
// OnStop hooks run when the runtime delivers SIGTERM before freezing the
// execution environment. Wiring or startup errors panic, which the runtime
// reports as an initialization failure.
func Start[H lambda.Handler](opts ...loom.Option) {
	handler, app, err := build[H](opts...)
	if err != nil {
		panic(err)
	}
	lambda.StartWithOptions(handler, lambda.WithEnableSIGTERM(func() {
		ctx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		_ = app.Stop(ctx)
	}))
}

// build does everything Start does short of entering the runtime's poll
// loop, so tests can exercise the wiring.
func build[H lambda.Handler](opts ...loom.Option) (H, *loom.App, error) {
	var handler H
	allOpts := make([]loom.Option, 0, len(opts)+1)
	allOpts = append(allOpts, opts...)
	allOpts = append(allOpts, loom.Populate(&handler))

	app := loom.New(allOpts...)
	if err := app.Err(); err != nil {
		return handler, app, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return handler, app, err
	}
	return handler, app, nil
}
