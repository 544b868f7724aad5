// Package iterate provides visitor-style traversal over int sequences.
// The iteration variable lives only inside the traversal; callers observe
// elements solely through the visit callback.
package iterate

// ForEach invokes visit once per element of seq, in order.
// A nil visit is a no-op.
func ForEach(seq []int, visit func(int)) {
	if visit == nil {
		return
	}
	for _, n := range seq {
		visit(n)
	}
}

// Range returns the ints from lo through hi inclusive.
// Returns an empty slice when lo > hi.
func Range(lo, hi int) []int {
	if lo > hi {
		return []int{}
	}
	out := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, n)
	}
	return out
}
