package ilp

// Fold combines accs into init in ascending lane order:
//
//	result = op(...op(op(init, accs[0]), accs[1])..., accs[K-1])
//
// The order is fixed so that non-commutative ops and floating-point sums give
// reproducible results for a given K.
func Fold[T any](accs []T, op Op[T], init T) T {
	op.check()
	result := init
	for _, acc := range accs {
		result = op.combine(result, acc)
	}
	return result
}
