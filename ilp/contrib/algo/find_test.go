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

import (
	"fmt"
	"testing"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name   string
		slice  []float32
		value  float32
		expect int
	}{
		{"first", []float32{1, 2, 3, 4, 5}, 1, 0},
		{"middle", []float32{1, 2, 3, 4, 5}, 3, 2},
		{"last", []float32{1, 2, 3, 4, 5}, 5, 4},
		{"not_found", []float32{1, 2, 3, 4, 5}, 6, -1},
		{"empty", []float32{}, 1, -1},
		{"single_found", []float32{42}, 42, 0},
		{"single_not_found", []float32{42}, 1, -1},
		{"duplicates", []float32{1, 2, 3, 2, 5}, 2, 1}, // Returns first occurrence
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(tt.slice, tt.value)
			if got != tt.expect {
				t.Errorf("Find(%v, %v) = %d, want %d", tt.slice, tt.value, got, tt.expect)
			}
		})
	}
}

func TestFind_Large(t *testing.T) {
	// Sizes around multiples of the unroll factors in use.
	sizes := []int{15, 16, 17, 31, 32, 33, 100}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			slice := make([]float32, size)
			for i := range slice {
				slice[i] = float32(i)
			}

			// Find element in tail
			got := Find(slice, float32(size-1))
			if got != size-1 {
				t.Errorf("Find last element: got %d, want %d", got, size-1)
			}

			// Find element in middle
			mid := size / 2
			got = Find(slice, float32(mid))
			if got != mid {
				t.Errorf("Find middle element: got %d, want %d", got, mid)
			}
		})
	}
}

func TestFind_Strings(t *testing.T) {
	slice := []string{"red", "green", "blue"}
	if got := Find(slice, "blue"); got != 2 {
		t.Errorf("Find string: got %d, want 2", got)
	}
	if Contains(slice, "purple") {
		t.Error("Contains(purple) = true, want false")
	}
	if !Contains(slice, "green") {
		t.Error("Contains(green) = false, want true")
	}
}

func TestFindIf(t *testing.T) {
	slice := []float32{-5, -3, -1, 0, 1, 3, 5}

	tests := []struct {
		name   string
		pred   Predicate[float32]
		expect int
	}{
		{"greater_than", GreaterThan[float32]{Threshold: 0}, 4},
		{"greater_equal", GreaterEqual[float32]{Threshold: 0}, 3},
		{"less_than", LessThan[float32]{Threshold: -2}, 0},
		{"less_equal", LessEqual[float32]{Threshold: -5}, 0},
		{"equal", Equal[float32]{Value: 3}, 5},
		{"not_equal", NotEqual[float32]{Value: -5}, 1},
		{"in_range", InRange[float32]{Min: 2, Max: 4}, 5},
		{"out_of_range", OutOfRange[float32]{Min: -4, Max: 4}, 0},
		{"is_zero", IsZero[float32]{}, 3},
		{"is_non_zero", IsNonZero[float32]{}, 0},
		{"is_positive", IsPositive[float32]{}, 4},
		{"is_negative", IsNegative[float32]{}, 0},
		{"none", GreaterThan[float32]{Threshold: 100}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindIfP(slice, tt.pred); got != tt.expect {
				t.Errorf("FindIfP(%s) = %d, want %d", tt.name, got, tt.expect)
			}
			if got := FindIf(slice, tt.pred.Test); got != tt.expect {
				t.Errorf("FindIf(%s) = %d, want %d", tt.name, got, tt.expect)
			}
		})
	}
}

func TestCount(t *testing.T) {
	slice := []int32{1, 2, 3, 2, 2, 5, 2, 7, 8, 2, 2}
	if got := Count(slice, 2); got != 6 {
		t.Errorf("Count(2) = %d, want 6", got)
	}
	if got := Count(slice, 9); got != 0 {
		t.Errorf("Count(9) = %d, want 0", got)
	}
	if got := CountIf(slice, func(v int32) bool { return v > 2 }); got != 4 {
		t.Errorf("CountIf(>2) = %d, want 4", got)
	}
	if got := CountIfP([]int32{}, IsZero[int32]{}); got != 0 {
		t.Errorf("CountIfP(empty) = %d, want 0", got)
	}
}

func TestAllAnyNone(t *testing.T) {
	positive := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	mixed := []float64{1, 2, 3, 4, -5, 6, 7, 8, 9}
	isPositive := func(v float64) bool { return v > 0 }

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"all_positive", All(positive, isPositive), true},
		{"all_mixed", All(mixed, isPositive), false},
		{"all_empty", All([]float64{}, isPositive), true},
		{"allp_mixed", AllP(mixed, IsPositive[float64]{}), false},
		{"any_negative_mixed", AnyP(mixed, IsNegative[float64]{}), true},
		{"any_negative_positive", Any(positive, func(v float64) bool { return v < 0 }), false},
		{"any_empty", Any([]float64{}, isPositive), false},
		{"none_negative_positive", NoneP(positive, IsNegative[float64]{}), true},
		{"none_negative_mixed", None(mixed, func(v float64) bool { return v < 0 }), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
