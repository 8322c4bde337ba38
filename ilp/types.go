// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ilp provides loop unrolling tuned for instruction-level parallelism.
//
// A loop with a carried dependency (acc = acc + x) can only keep one
// operation in flight at a time. Splitting it into K independent chains lets
// the CPU's out-of-order engine overlap the latency of each chain. The
// package runs the body in blocks of K elements, routes element j of each
// block into accumulator lane j, handles the remainder sequentially, and
// folds the lanes back together in lane order.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-ilp/ilp"
//
//	// Sum of squares with 8 independent accumulators.
//	sum := ilp.Reduce(0, len(data), 8, 0.0, ilp.Add[float64](),
//	    func(i int) float64 { return data[i] * data[i] })
//
//	// First index holding a negative value, K picked from the CPU profile.
//	idx := ilp.FindSliceAuto(data, func(v float64) bool { return v < 0 })
//
// Early exit is expressed through a *Ctrl passed to the body:
//
//	res := ilp.For(0, n, 4, func(i int, c *ilp.Ctrl[string]) {
//	    if names[i] == target {
//	        c.Return(names[i])
//	    }
//	})
//	if v, ok := res.Value(); ok {
//	    ...
//	}
//
// Parallelism here is purely within one goroutine: nothing in this package
// spawns goroutines or blocks.
package ilp

import "golang.org/x/exp/constraints"

// Floats is a constraint for floating-point types.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	constraints.Unsigned
}

// Integers is a constraint for all integer types.
// Loop indices of every entry point are Integers.
type Integers interface {
	constraints.Integer
}

// Numbers is a constraint for all types that support arithmetic reductions.
type Numbers interface {
	Floats | Integers
}

// Ordered is a constraint for types that support the < operator.
type Ordered interface {
	constraints.Ordered
}
