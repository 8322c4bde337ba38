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

package vec

import (
	"math"

	"github.com/ajroetker/go-ilp/ilp"
)

// Dot computes the dot product of a and b over their common length.
//
// Returns 0 if either slice is empty.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func Dot[T ilp.Numbers](a, b []T) T {
	n := min(len(a), len(b))
	return ilp.SumRange(0, n, ilp.OptimalK[T](ilp.DotProduct), func(i int) T {
		return a[i] * b[i]
	})
}

// SquaredNorm computes the sum of squares of v, the same as Dot(v, v).
//
// Example:
//
//	v := []float32{3, 4}
//	result := SquaredNorm(v)  // 3*3 + 4*4 = 25
func SquaredNorm[T ilp.Numbers](v []T) T {
	return ilp.SumSlice(v, ilp.OptimalK[T](ilp.DotProduct), func(x T) T { return x * x })
}

// Norm computes the L2 norm (Euclidean magnitude) of v.
//
// Returns 0 if the slice is empty.
func Norm[T ilp.Floats](v []T) T {
	squaredNorm := SquaredNorm(v)
	if squaredNorm == 0 {
		return 0
	}
	return T(math.Sqrt(float64(squaredNorm)))
}
