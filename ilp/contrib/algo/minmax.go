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

package algo

import "github.com/ajroetker/go-ilp/ilp"

// best is a candidate for ArgMin/ArgMax. idx < 0 marks "no candidate yet",
// the identity of the selection ops.
type best[T ilp.Ordered] struct {
	idx int
	val T
}

// selectOp returns the op keeping the better of two candidates, where
// better(a, b) reports that a beats b. Ties go to the lower index, which
// makes the op commutative and the result independent of K.
func selectOp[T ilp.Ordered](name string, better func(a, b T) bool) ilp.Op[best[T]] {
	return ilp.NewMonoid(name, func(a, b best[T]) best[T] {
		switch {
		case a.idx < 0:
			return b
		case b.idx < 0:
			return a
		case better(b.val, a.val), b.val == a.val && b.idx < a.idx:
			return b
		}
		return a
	}, best[T]{idx: -1})
}

func argBest[T ilp.Ordered](v []T, name string, better func(a, b T) bool) int {
	none := best[T]{idx: -1}
	found := ilp.Reduce(0, len(v), ilp.OptimalK[T](ilp.MinMax), none, selectOp(name, better),
		func(i int) best[T] {
			if v[i] != v[i] {
				// NaN
				return none
			}
			return best[T]{idx: i, val: v[i]}
		})
	return max(found.idx, 0)
}

// ArgMax returns the index of the maximum value in a slice.
// If multiple elements have the maximum value, returns the first occurrence.
// NaN values are skipped; a slice of only NaN values returns 0.
// Panics if the slice is empty.
//
// Example:
//
//	data := []float32{3, 1, 4, 1, 5}
//	idx := ArgMax(data)  // 4 (index of value 5)
func ArgMax[T ilp.Ordered](v []T) int {
	if len(v) == 0 {
		panic("algo: ArgMax called on empty slice")
	}
	return argBest(v, "argmax", func(a, b T) bool { return a > b })
}

// ArgMin returns the index of the minimum value in a slice.
// If multiple elements have the minimum value, returns the first occurrence.
// NaN values are skipped; a slice of only NaN values returns 0.
// Panics if the slice is empty.
func ArgMin[T ilp.Ordered](v []T) int {
	if len(v) == 0 {
		panic("algo: ArgMin called on empty slice")
	}
	return argBest(v, "argmin", func(a, b T) bool { return a < b })
}

type bounds[T ilp.Numbers] struct {
	lo, hi T
}

// MinMax returns the minimum and maximum values of a slice in one pass.
// Panics if the slice is empty.
func MinMax[T ilp.Numbers](v []T) (lo, hi T) {
	if len(v) == 0 {
		panic("algo: MinMax called on empty slice")
	}
	minOp, maxOp := ilp.Min[T](), ilp.Max[T]()
	minID, _ := minOp.Identity()
	maxID, _ := maxOp.Identity()
	op := ilp.NewMonoid("minmax", func(a, b bounds[T]) bounds[T] {
		return bounds[T]{lo: minOp.Apply(a.lo, b.lo), hi: maxOp.Apply(a.hi, b.hi)}
	}, bounds[T]{lo: minID, hi: maxID})
	first := bounds[T]{lo: v[0], hi: v[0]}
	r := ilp.ReduceSlice(v[1:], ilp.OptimalK[T](ilp.MinMax), first, op, func(x T) bounds[T] {
		return bounds[T]{lo: x, hi: x}
	})
	return r.lo, r.hi
}
