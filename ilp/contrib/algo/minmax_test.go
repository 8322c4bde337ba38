package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgMax(t *testing.T) {
	tests := []struct {
		name   string
		input  []float32
		expect int
	}{
		{"single", []float32{7}, 0},
		{"basic", []float32{3, 1, 4, 1, 5}, 4},
		{"first_occurrence", []float32{5, 1, 5, 2, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}, 0},
		{"tie_in_tail", []float32{0, 0, 0, 0, 0, 0, 0, 0, 0, 9, 0, 9}, 9},
		{"skips_nan", []float32{float32(math.NaN()), 2, 3, float32(math.NaN())}, 2},
		{"all_nan", []float32{float32(math.NaN()), float32(math.NaN())}, 0},
		{"negative", []float32{-3, -1, -2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArgMax(tt.input); got != tt.expect {
				t.Errorf("ArgMax(%v) = %d, want %d", tt.input, got, tt.expect)
			}
		})
	}
}

func TestArgMin(t *testing.T) {
	data := make([]int64, 100)
	for i := range data {
		data[i] = int64((i*37)%101 - 50)
	}
	want := 0
	for i, v := range data {
		if v < data[want] {
			want = i
		}
	}
	assert.Equal(t, want, ArgMin(data))
	assert.Equal(t, 1, ArgMin([]string{"pear", "apple", "fig", "apple"}))
	assert.Equal(t, 0, ArgMin([]float64{math.NaN()}))

	assert.PanicsWithValue(t, "algo: ArgMin called on empty slice", func() { ArgMin([]int{}) })
	assert.PanicsWithValue(t, "algo: ArgMax called on empty slice", func() { ArgMax([]int{}) })
}

func TestMinMax(t *testing.T) {
	lo, hi := MinMax([]float64{3, -1, 4, 1, -5, 9, 2, 6})
	assert.Equal(t, -5.0, lo)
	assert.Equal(t, 9.0, hi)

	lo8, hi8 := MinMax([]uint8{42})
	assert.Equal(t, uint8(42), lo8)
	assert.Equal(t, uint8(42), hi8)

	assert.PanicsWithValue(t, "algo: MinMax called on empty slice", func() { MinMax([]int32{}) })
}
