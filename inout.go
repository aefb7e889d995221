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

import "github.com/strandlabs/loom/internal/graph"

// In can be embedded in a constructor's parameter struct to take advantage
// of named and optional bindings:
//
//	type Params struct {
//		loom.In
//
//		Primary *sql.DB
//		Replica *sql.DB `name:"replica"`
//		Metrics *Stats  `optional:"true"`
//	}
//
// Constructors taking a single parameter struct stay forwards-compatible:
// optional fields can be added without breaking callers.
type In = graph.In

// Out can be embedded in a constructor's result struct so that each
// exported field becomes its own binding:
//
//	type Result struct {
//		loom.Out
//
//		Primary *sql.DB
//		Replica *sql.DB `name:"replica"`
//	}
type Out = graph.Out
