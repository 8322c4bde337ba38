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

package ilp

// Accumulators holds the K independent partial results of one reduction.
// It is owned by a single invocation and is not safe for concurrent use.
type Accumulators[T any] struct {
	op    Op[T]
	lanes []T

	// seeded is set when the op has no identity: the single lane already
	// holds init, which must not be folded in a second time.
	seeded bool
}

// MakeAccumulators creates the accumulator lanes for a reduction with the
// requested unroll factor k.
//
// If op has an identity, all k lanes start at it and init is not used until
// Result. Otherwise a single lane is created holding init, and a one-time
// warning is logged if k > 1 was asked for.
//
// It panics if k < 1 or op has no combining function.
func MakeAccumulators[T any](k int, op Op[T], init T) *Accumulators[T] {
	validateK(k)
	op.check()
	identity, ok := op.Identity()
	if !ok {
		if k > 1 {
			warnUnknownIdentity(op.Name(), k)
		}
		return &Accumulators[T]{op: op, lanes: []T{init}, seeded: true}
	}
	lanes := make([]T, k)
	for i := range lanes {
		lanes[i] = identity
	}
	return &Accumulators[T]{op: op, lanes: lanes}
}

// K returns the number of lanes, which is less than the requested unroll
// factor for ops without identity.
func (a *Accumulators[T]) K() int {
	return len(a.lanes)
}

// Combine folds v into the given lane.
func (a *Accumulators[T]) Combine(lane int, v T) {
	a.lanes[lane] = a.op.combine(a.lanes[lane], v)
}

// Lanes returns the current lane values. The slice is owned by a and must
// not be modified.
func (a *Accumulators[T]) Lanes() []T {
	return a.lanes
}

// Result folds the lanes into the final value. For ops with identity, init
// is combined first, followed by lanes 0..K-1. For ops without identity,
// init was already used to seed the lane and the argument is ignored.
func (a *Accumulators[T]) Result(init T) T {
	if a.seeded {
		return a.lanes[0]
	}
	return Fold(a.lanes, a.op, init)
}
