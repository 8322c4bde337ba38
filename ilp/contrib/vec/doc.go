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

// Package vec provides numeric slice reductions built on the ilp engine.
//
// Every function picks its unroll factor from the active CPU profile, using
// the category that matches its dominant operation:
//
//   - Sum, SumInt64, SumFloat16: ilp.Sum
//   - Dot, SquaredNorm, Norm: ilp.DotProduct
//   - Product: ilp.Multiply
//   - Min, Max: ilp.MinMax
//   - AndAll, OrAll, XorAll: ilp.Bitwise
//
// # Example Usage
//
//	import "github.com/ajroetker/go-ilp/ilp/contrib/vec"
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	dot := vec.Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
//
// Floating-point sums are computed over several independent accumulators, so
// they may differ from a sequential loop in the last bits. For a given CPU
// profile the result is deterministic.
package vec
