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

// Package loom is a dependency injection container for Go applications,
// built for short-lived serverless handlers as much as for long-running
// services.
//
// An application declares its object graph with constructors and lets loom
// wire it together:
//
//	app := loom.New(
//		loom.Provide(NewConfig, NewService, NewRunner),
//		loom.Invoke(func(r *Runner) { /* use r */ }),
//	)
//	app.Run()
//
// Constructors registered with Provide are called lazily and at most once:
// every consumer of a type shares the same instance (singleton scope). Wrap
// a constructor in Transient to get a fresh instance per use instead.
// Already-built values enter the graph with Supply, and Populate pulls
// resolved instances back out into caller-owned variables.
//
// Long-lived resources tie into the application lifecycle by appending
// hooks:
//
//	func NewServer(lc loom.Lifecycle) *http.Server {
//		srv := &http.Server{}
//		lc.Append(loom.Hook{
//			OnStart: func(ctx context.Context) error { /* listen */ return nil },
//			OnStop:  func(ctx context.Context) error { return srv.Shutdown(ctx) },
//		})
//		return srv
//	}
//
// For serverless hosts, the loomlambda package resolves a handler from the
// container and hands it to the AWS Lambda runtime.
package loom
