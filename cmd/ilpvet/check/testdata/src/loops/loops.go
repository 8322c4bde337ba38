package loops

import "github.com/ajroetker/go-ilp/ilp"

const wideK = 20

func unrollFactors(n, k int) {
	ilp.Each(0, n, 0, func(int) {})     // want `ilp.Each: unroll factor must be at least 1`
	ilp.Each(0, n, 32, func(int) {})    // want `ilp.Each: unroll factor 32 exceeds 16`
	ilp.Each(0, n, wideK, func(int) {}) // want `ilp.Each: unroll factor 20 exceeds 16`
	ilp.Each(0, n, wideK-4, func(int) {})
	ilp.Each(0, n, k, func(int) {})
	_ = ilp.SumRange(0, n, -1, func(i int) int { return i })        // want `ilp.SumRange: unroll factor must be at least 1`
	_ = ilp.FindSlice([]int{1}, 17, func(int) bool { return true }) // want `ilp.FindSlice: unroll factor 17 exceeds 16`
	ilp.For(0, n, 8, func(int, *ilp.Ctrl[int]) {})
}

func steps(n int) {
	ilp.EachStep(0, n, 0, 4, func(int) {}) // want `ilp.EachStep: step is 0, the call panics`
	ilp.EachStep(n, 0, -1, 4, func(int) {})
	ilp.ForStep(0, n, 2, 0, func(int, *ilp.Ctrl[int]) {}) // want `ilp.ForStep: unroll factor must be at least 1`
}

type count int16

func accumulators(wide []int32, narrow []int8) {
	_ = ilp.SumSlice(wide, 4, func(v int32) int8 { return int8(v) })   // want `ilp.SumSlice: accumulator type int8 is narrower than element type int32`
	_ = ilp.SumSlice(wide, 4, func(v int32) count { return count(v) }) // want `accumulator type loops.count is narrower than element type int32`
	_ = ilp.SumSlice(wide, 4, func(v int32) int64 { return int64(v) })
	_ = ilp.SumSlice(narrow, 4, func(v int8) int32 { return int32(v) })
	_ = ilp.SumSlice(wide, 4, func(v int32) float32 { return float32(v) })
	_ = ilp.ReduceSlice(wide, 4, int16(0), ilp.Add[int16](), func(v int32) int16 { return int16(v) }) // want `ilp.ReduceSlice: accumulator type int16 is narrower`
}
