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

// For runs body for every i in [start, end), in blocks of k, stopping as soon
// as the body calls Break or Return on its Ctrl.
//
// Elements are visited in ascending order whatever k is, and no element after
// the one that stopped the loop runs. It panics if k < 1.
func For[R any, I Integers](start, end I, k int, body func(i I, c *Ctrl[R])) Result[R] {
	return ForStep(start, end, 1, k, body)
}

// ForStep is For over start, start+step, start+2*step, ... The range ends
// before reaching end: for step > 0 it holds values < end, for step < 0
// values > end. It panics if step is 0 or k < 1.
func ForStep[R any, I Integers](start, end, step I, k int, body func(i I, c *Ctrl[R])) Result[R] {
	validateK(k)
	var ctrl Ctrl[R]
	newSpan(start, end, step).iterate(k, func(_ int, i I) bool {
		body(i, &ctrl)
		return !ctrl.stopped
	})
	return ctrl.result()
}

// ForSlice is For over the elements of s; the body receives each index and
// value.
func ForSlice[R, E any](s []E, k int, body func(i int, v E, c *Ctrl[R])) Result[R] {
	validateK(k)
	var ctrl Ctrl[R]
	sliceSpan(len(s)).iterate(k, func(_ int, i int) bool {
		body(i, s[i], &ctrl)
		return !ctrl.stopped
	})
	return ctrl.result()
}

// Each runs body for every i in [start, end), in blocks of k.
func Each[I Integers](start, end I, k int, body func(i I)) {
	EachStep(start, end, 1, k, body)
}

// EachStep runs body for every value of the strided range described in
// ForStep.
func EachStep[I Integers](start, end, step I, k int, body func(i I)) {
	validateK(k)
	newSpan(start, end, step).iterate(k, func(_ int, i I) bool {
		body(i)
		return true
	})
}

// EachSlice runs body for every element of s, in blocks of k.
func EachSlice[E any](s []E, k int, body func(i int, v E)) {
	validateK(k)
	sliceSpan(len(s)).iterate(k, func(_ int, i int) bool {
		body(i, s[i])
		return true
	})
}
