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

// Searches evaluate a whole block of k candidates before looking at the
// results, so the k evaluations carry no dependency on each other. The block
// is then scanned in ascending order, which keeps the answer the lowest
// matching position: the same as a sequential scan. The price is that up
// to k-1 candidates past the match are evaluated; predicates must be free
// of side effects.

// Find returns the lowest i in [start, end) for which pred(i) is true.
// It panics if k < 1.
func Find[I Integers](start, end I, k int, pred func(i I) bool) (I, bool) {
	validateK(k)
	matches := make([]bool, k)
	return findBlocks(newSpan(start, end, 1), k,
		func(lane int, i I) { matches[lane] = pred(i) },
		func(lane int) bool { return matches[lane] },
		pred)
}

// FindValue returns the value produced for the lowest i in [start, end)
// whose body reports true.
func FindValue[R any, I Integers](start, end I, k int, body func(i I) (R, bool)) Option[R] {
	validateK(k)
	results := make([]Option[R], k)
	var last Option[R]
	_, ok := findBlocks(newSpan(start, end, 1), k,
		func(lane int, i I) {
			results[lane] = optionOf(body(i))
		},
		func(lane int) bool {
			if results[lane].IsSome() {
				last = results[lane]
				return true
			}
			return false
		},
		func(i I) bool {
			last = optionOf(body(i))
			return last.IsSome()
		})
	if !ok {
		return None[R]()
	}
	return last
}

// FindSlice returns the index of the first element of s satisfying pred,
// or -1 if there is none.
func FindSlice[E any](s []E, k int, pred func(v E) bool) int {
	idx, ok := Find(0, len(s), k, func(i int) bool { return pred(s[i]) })
	if !ok {
		return -1
	}
	return idx
}

// FindSliceValue returns the value produced for the first element of s
// whose body reports true.
func FindSliceValue[R, E any](s []E, k int, body func(i int, v E) (R, bool)) Option[R] {
	return FindValue(0, len(s), k, func(i int) (R, bool) { return body(i, s[i]) })
}

func optionOf[R any](v R, ok bool) Option[R] {
	if ok {
		return Some(v)
	}
	return None[R]()
}

// findBlocks drives a search over sp. For each full block it calls eval for
// every lane, then hit for lanes 0..k-1 until one reports true. The
// remainder is searched one element at a time with single.
func findBlocks[I Integers](sp span[I], k int, eval func(lane int, i I), hit func(lane int) bool,
	single func(i I) bool) (I, bool) {
	blocks, remaining := sp.split(k)
	i := sp.start
	for b := uint64(0); b < blocks; b++ {
		first := i
		for lane := 0; lane < k; lane++ {
			eval(lane, i)
			i += sp.step
		}
		for lane := 0; lane < k; lane++ {
			if hit(lane) {
				return first + I(lane)*sp.step, true
			}
		}
	}
	for r := uint64(0); r < remaining; r++ {
		if single(i) {
			return i, true
		}
		i += sp.step
	}
	var zero I
	return zero, false
}
