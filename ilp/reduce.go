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

// Reduce combines body(i) for every i in [start, end) using op, with k
// independent accumulators.
//
// Element j of each block of k goes to accumulator j, the remainder goes to
// accumulator 0, and the accumulators are folded into init in lane order.
// For an op with identity e and an associative, commutative combine, the
// result equals the sequential op(...op(init, body(start))..., body(end-1));
// for floating-point addition it may differ by rounding, deterministically
// for a given k.
//
// An empty range returns init. It panics if k < 1.
func Reduce[T any, I Integers](start, end I, k int, init T, op Op[T], body func(i I) T) T {
	return ReduceStep(start, end, 1, k, init, op, body)
}

// ReduceStep is Reduce over the strided range described in ForStep.
func ReduceStep[T any, I Integers](start, end, step I, k int, init T, op Op[T], body func(i I) T) T {
	accs := MakeAccumulators(k, op, init)
	newSpan(start, end, step).iterate(accs.K(), func(lane int, i I) bool {
		accs.Combine(lane, body(i))
		return true
	})
	return accs.Result(init)
}

// ReduceWhile is Reduce with early exit: the body returns false to stop, and
// the value returned with false is not combined. Everything combined before
// the stop is kept.
func ReduceWhile[T any, I Integers](start, end I, k int, init T, op Op[T], body func(i I) (T, bool)) T {
	accs := MakeAccumulators(k, op, init)
	newSpan(start, end, 1).iterate(accs.K(), func(lane int, i I) bool {
		v, ok := body(i)
		if !ok {
			return false
		}
		accs.Combine(lane, v)
		return true
	})
	return accs.Result(init)
}

// ReduceSlice combines body(v) for every element of s using op, as Reduce.
func ReduceSlice[T, E any](s []E, k int, init T, op Op[T], body func(v E) T) T {
	accs := MakeAccumulators(k, op, init)
	sliceSpan(len(s)).iterate(accs.K(), func(lane int, i int) bool {
		accs.Combine(lane, body(s[i]))
		return true
	})
	return accs.Result(init)
}

// ReduceSliceWhile is ReduceWhile over the elements of s.
func ReduceSliceWhile[T, E any](s []E, k int, init T, op Op[T], body func(v E) (T, bool)) T {
	accs := MakeAccumulators(k, op, init)
	sliceSpan(len(s)).iterate(accs.K(), func(lane int, i int) bool {
		v, ok := body(s[i])
		if !ok {
			return false
		}
		accs.Combine(lane, v)
		return true
	})
	return accs.Result(init)
}

// SumRange adds body(i) for every i in [start, end), starting from 0.
func SumRange[T Numbers, I Integers](start, end I, k int, body func(i I) T) T {
	return Reduce(start, end, k, 0, Add[T](), body)
}

// SumSlice adds body(v) for every element of s, starting from 0.
func SumSlice[T Numbers, E any](s []E, k int, body func(v E) T) T {
	return ReduceSlice(s, k, 0, Add[T](), body)
}
