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

import "github.com/gomlx/exceptions"

// span is a strided integer range reduced to its element count.
//
// The count is computed in uint64 so that ranges touching the limits of the
// index type neither overflow nor loop forever: [start, end) with step > 0
// holds the values start, start+step, ... while < end, and with step < 0
// the values start, start+step, ... while > end.
type span[I Integers] struct {
	start I
	step  I
	count uint64
}

func newSpan[I Integers](start, end, step I) span[I] {
	if step == 0 {
		exceptions.Panicf("ilp: step must be non-zero")
	}
	s := span[I]{start: start, step: step}
	var diff, mag uint64
	switch {
	case step > 0 && start < end:
		diff = uint64(end) - uint64(start)
		mag = uint64(step)
	case step < 0 && start > end:
		diff = uint64(start) - uint64(end)
		mag = uint64(0) - uint64(step)
	default:
		return s
	}
	s.count = diff / mag
	if diff%mag != 0 {
		s.count++
	}
	return s
}

func sliceSpan(n int) span[int] {
	return span[int]{start: 0, step: 1, count: uint64(n)}
}

// split returns the number of full blocks of k elements and the number of
// elements left over.
func (s span[I]) split(k int) (blocks, remaining uint64) {
	return s.count / uint64(k), s.count % uint64(k)
}

// iterate visits every element in order: first the full blocks of k, where
// element j of a block is given lane j, then the remainder, all in lane 0.
// visit returns false to stop; iterate reports whether it ran to the end.
func (s span[I]) iterate(k int, visit func(lane int, i I) bool) bool {
	blocks, remaining := s.split(k)
	i := s.start
	for b := uint64(0); b < blocks; b++ {
		for lane := 0; lane < k; lane++ {
			if !visit(lane, i) {
				return false
			}
			i += s.step
		}
	}
	for r := uint64(0); r < remaining; r++ {
		if !visit(0, i) {
			return false
		}
		i += s.step
	}
	return true
}
