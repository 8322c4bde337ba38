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

// Fill sets all elements in dst to the specified value.
func Fill[T any](dst []T, value T) {
	ilp.Each(0, len(dst), ilp.OptimalK[T](ilp.Copy), func(i int) {
		dst[i] = value
	})
}

// Copy copies elements from src to dst.
// Returns the number of elements copied (min of len(src) and len(dst)).
func Copy[T any](src, dst []T) int {
	n := min(len(src), len(dst))
	ilp.EachSlice(src[:n], ilp.OptimalK[T](ilp.Copy), func(i int, v T) {
		dst[i] = v
	})
	return n
}

// CopyIf conditionally copies elements from src to dst based on a predicate.
// Elements where pred(element) is true are packed together in dst (stream compaction).
// Returns the number of elements copied (limited by dst capacity).
//
// Example: Copy only positive values
//
//	copied := CopyIf(src, dst, func(v float32) bool { return v > 0 })
func CopyIf[T any](src, dst []T, pred func(T) bool) int {
	return CopyIfP(src, dst, FuncPredicate[T]{Fn: pred})
}

// CopyIfP is CopyIf with a Predicate.
func CopyIfP[T any, P Predicate[T]](src, dst []T, pred P) int {
	if len(src) == 0 || len(dst) == 0 {
		return 0
	}
	dstIdx := 0
	ilp.ForSlice(src, ilp.OptimalK[T](ilp.Copy), func(_ int, v T, c *ilp.Ctrl[struct{}]) {
		if !pred.Test(v) {
			return
		}
		dst[dstIdx] = v
		dstIdx++
		if dstIdx == len(dst) {
			c.Break()
		}
	}).Discard()
	return dstIdx
}

// Transform applies fn to each element of input, storing results in output.
// Only min(len(input), len(output)) elements are processed; the count is
// returned.
//
// Example usage:
//
//	Transform(input, output, func(x float32) float32 { return x*x + x })
func Transform[T, U any](input []T, output []U, fn func(T) U) int {
	n := min(len(input), len(output))
	ilp.EachSlice(input[:n], ilp.OptimalK[T](ilp.Transform), func(i int, v T) {
		output[i] = fn(v)
	})
	return n
}
