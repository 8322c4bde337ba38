// Package ilp declares the subset of the ilp API that the ilpvet tests call.
package ilp

type Integers interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Numbers interface {
	Integers | ~float32 | ~float64
}

type Op[T any] struct{}

func Add[T Numbers]() Op[T] { return Op[T]{} }

type Ctrl[R any] struct{}

type Result[R any] struct{}

func For[R any, I Integers](start, end I, k int, body func(i I, c *Ctrl[R])) Result[R] {
	return Result[R]{}
}

func ForStep[R any, I Integers](start, end, step I, k int, body func(i I, c *Ctrl[R])) Result[R] {
	return Result[R]{}
}

func Each[I Integers](start, end I, k int, body func(i I)) {}

func EachStep[I Integers](start, end, step I, k int, body func(i I)) {}

func SumRange[T Numbers, I Integers](start, end I, k int, body func(i I) T) T {
	var zero T
	return zero
}

func SumSlice[T Numbers, E any](s []E, k int, body func(v E) T) T {
	var zero T
	return zero
}

func ReduceSlice[T, E any](s []E, k int, init T, op Op[T], body func(v E) T) T {
	return init
}

func FindSlice[E any](s []E, k int, pred func(v E) bool) int { return -1 }
