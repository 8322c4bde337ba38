package ilp

// The *Auto variants pick k with OptimalK. Loops and reductions use the Sum
// category, searches use Search. Range forms classify by the index type,
// slice forms by the element type.

// ForAuto is For with k chosen from the active profile.
func ForAuto[R any, I Integers](start, end I, body func(i I, c *Ctrl[R])) Result[R] {
	return For(start, end, OptimalK[I](Sum), body)
}

// ForSliceAuto is ForSlice with k chosen from the active profile.
func ForSliceAuto[R, E any](s []E, body func(i int, v E, c *Ctrl[R])) Result[R] {
	return ForSlice(s, OptimalK[E](Sum), body)
}

// ReduceAuto is Reduce with k chosen from the active profile.
func ReduceAuto[T any, I Integers](start, end I, init T, op Op[T], body func(i I) T) T {
	return Reduce(start, end, OptimalK[I](Sum), init, op, body)
}

// ReduceSliceAuto is ReduceSlice with k chosen from the active profile.
func ReduceSliceAuto[T, E any](s []E, init T, op Op[T], body func(v E) T) T {
	return ReduceSlice(s, OptimalK[E](Sum), init, op, body)
}

// SumAuto is SumRange with k chosen from the active profile.
func SumAuto[T Numbers, I Integers](start, end I, body func(i I) T) T {
	return SumRange(start, end, OptimalK[I](Sum), body)
}

// SumSliceAuto is SumSlice with k chosen from the active profile.
func SumSliceAuto[T Numbers, E any](s []E, body func(v E) T) T {
	return SumSlice(s, OptimalK[E](Sum), body)
}

// FindAuto is Find with k chosen from the active profile.
func FindAuto[I Integers](start, end I, pred func(i I) bool) (I, bool) {
	return Find(start, end, OptimalK[I](Search), pred)
}

// FindSliceAuto is FindSlice with k chosen from the active profile.
func FindSliceAuto[E any](s []E, pred func(v E) bool) int {
	return FindSlice(s, OptimalK[E](Search), pred)
}
