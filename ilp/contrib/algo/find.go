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

// Find returns the index of the first element equal to value.
// Returns -1 if not found.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5}
//	idx := Find(data, 3)  // 2
func Find[T comparable](slice []T, value T) int {
	return FindIfP(slice, Equal[T]{Value: value})
}

// Contains returns true if slice contains value.
func Contains[T comparable](slice []T, value T) bool {
	return Find(slice, value) >= 0
}

// Count returns the number of elements equal to value.
func Count[T comparable](slice []T, value T) int {
	return CountIfP(slice, Equal[T]{Value: value})
}

// FindIf returns the index of the first element for which pred returns true.
// Returns -1 if no element matches.
//
// Example: Find first element greater than 10
//
//	idx := FindIf(data, func(v float32) bool { return v > 10 })
//
// FindIfP with one of the predicate types avoids the indirect call.
func FindIf[T any](slice []T, pred func(T) bool) int {
	return FindIfP(slice, FuncPredicate[T]{Fn: pred})
}

// FindIfP is FindIf with a Predicate.
func FindIfP[T any, P Predicate[T]](slice []T, pred P) int {
	return ilp.FindSlice(slice, ilp.OptimalK[T](ilp.Search), pred.Test)
}

// CountIf returns the number of elements for which pred returns true.
//
// Example: Count elements greater than 0
//
//	n := CountIf(data, func(v float32) bool { return v > 0 })
func CountIf[T any](slice []T, pred func(T) bool) int {
	return CountIfP(slice, FuncPredicate[T]{Fn: pred})
}

// CountIfP is CountIf with a Predicate.
func CountIfP[T any, P Predicate[T]](slice []T, pred P) int {
	return ilp.SumSlice(slice, ilp.OptimalK[T](ilp.Sum), func(v T) int {
		if pred.Test(v) {
			return 1
		}
		return 0
	})
}

// All returns true if pred returns true for all elements.
// Short-circuits on first false. All of an empty slice is true.
func All[T any](slice []T, pred func(T) bool) bool {
	return AllP(slice, FuncPredicate[T]{Fn: pred})
}

// AllP is All with a Predicate.
func AllP[T any, P Predicate[T]](slice []T, pred P) bool {
	return FindIfP(slice, not[T, P]{p: pred}) < 0
}

// Any returns true if pred returns true for any element.
// Short-circuits on first true.
func Any[T any](slice []T, pred func(T) bool) bool {
	return AnyP(slice, FuncPredicate[T]{Fn: pred})
}

// AnyP is Any with a Predicate.
func AnyP[T any, P Predicate[T]](slice []T, pred P) bool {
	return FindIfP(slice, pred) >= 0
}

// None returns true if pred returns false for all elements.
// This is equivalent to !Any(slice, pred).
func None[T any](slice []T, pred func(T) bool) bool {
	return !Any(slice, pred)
}

// NoneP is None with a Predicate.
func NoneP[T any, P Predicate[T]](slice []T, pred P) bool {
	return !AnyP(slice, pred)
}
