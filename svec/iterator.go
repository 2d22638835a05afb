package svec

import "iter"

// Positions in an SVec are represented as plain ints rather than pointer-like
// iterator objects: Go slices already give safe, bounds-checkable random
// access by index, and every SVec operation that spec.md describes in terms
// of an iterator accepts or returns a position index instead. Seq and
// SeqReverse below provide the range-over-func equivalent of begin/end and
// rbegin/rend for callers that want a plain traversal rather than indexed
// access, matching how cords.go exposes both manual cursors and iter.Seq
// ranges side by side.

// Seq returns a forward iterator sequence over the live elements.
func (v *SVec[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := uint32(0); i < v.size; i++ {
			if !yield(v.store[i]) {
				return
			}
		}
	}
}

// SeqReverse returns a reverse iterator sequence over the live elements.
func (v *SVec[T]) SeqReverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.size; i > 0; i-- {
			if !yield(v.store[i-1]) {
				return
			}
		}
	}
}

// Seq2 returns a forward iterator sequence over (index, element) pairs.
func (v *SVec[T]) Seq2() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := uint32(0); i < v.size; i++ {
			if !yield(int(i), v.store[i]) {
				return
			}
		}
	}
}
