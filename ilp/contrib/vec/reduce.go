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
	"github.com/ajroetker/go-ilp/ilp"
	"github.com/x448/float16"
)

func identity[T any](v T) T { return v }

// Sum computes the sum of all elements in a slice.
//
// Returns 0 if the slice is empty. Integer sums wrap on overflow like the
// equivalent Go loop; use SumInt64 to accumulate narrow integers.
//
// Example:
//
//	data := []float32{1, 2, 3, 4}
//	result := Sum(data)  // 1 + 2 + 3 + 4 = 10
func Sum[T ilp.Numbers](v []T) T {
	return ilp.SumSlice(v, ilp.OptimalK[T](ilp.Sum), identity[T])
}

// SumInt64 sums integers of any width into an int64 accumulator.
//
// Example:
//
//	data := []int8{100, 100, 100}
//	result := SumInt64(data)  // 300, where Sum would wrap to 44
func SumInt64[T ilp.Integers](v []T) int64 {
	return ilp.SumSlice(v, ilp.OptimalK[int64](ilp.Sum), func(x T) int64 { return int64(x) })
}

// SumFloat16 sums half-precision values into a float32 accumulator.
// Returns 0 if the slice is empty.
func SumFloat16(v []float16.Float16) float32 {
	return ilp.SumSlice(v, ilp.OptimalK[float16.Float16](ilp.Sum), func(x float16.Float16) float32 {
		return x.Float32()
	})
}

// Product computes the product of all elements in a slice.
//
// Returns 1 if the slice is empty.
func Product[T ilp.Numbers](v []T) T {
	return ilp.ReduceSlice(v, ilp.OptimalK[T](ilp.Multiply), 1, ilp.Mul[T](), identity[T])
}

// Min returns the minimum value in a slice.
//
// Panics if the slice is empty.
//
// Note: NaN values never compare less than anything, so they are skipped
// unless v[0] is NaN.
//
// Example:
//
//	data := []float32{3, 1, 4, 1, 5}
//	result := Min(data)  // 1
func Min[T ilp.Numbers](v []T) T {
	if len(v) == 0 {
		panic("vec: Min called on empty slice")
	}
	return ilp.ReduceSlice(v[1:], ilp.OptimalK[T](ilp.MinMax), v[0], ilp.Min[T](), identity[T])
}

// Max returns the maximum value in a slice.
//
// Panics if the slice is empty.
//
// Example:
//
//	data := []float32{3, 1, 4, 1, 5}
//	result := Max(data)  // 5
func Max[T ilp.Numbers](v []T) T {
	if len(v) == 0 {
		panic("vec: Max called on empty slice")
	}
	return ilp.ReduceSlice(v[1:], ilp.OptimalK[T](ilp.MinMax), v[0], ilp.Max[T](), identity[T])
}

// AndAll returns the bitwise and of all elements; all ones for an empty slice.
func AndAll[T ilp.Integers](v []T) T {
	return ilp.ReduceSlice(v, ilp.OptimalK[T](ilp.Bitwise), ^T(0), ilp.And[T](), identity[T])
}

// OrAll returns the bitwise or of all elements; 0 for an empty slice.
func OrAll[T ilp.Integers](v []T) T {
	return ilp.ReduceSlice(v, ilp.OptimalK[T](ilp.Bitwise), 0, ilp.Or[T](), identity[T])
}

// XorAll returns the bitwise exclusive or of all elements; 0 for an empty
// slice.
func XorAll[T ilp.Integers](v []T) T {
	return ilp.ReduceSlice(v, ilp.OptimalK[T](ilp.Bitwise), 0, ilp.Xor[T](), identity[T])
}
