package blist

import "iter"

// Iterator is a bidirectional cursor into a BList, addressed as a leaf and
// an offset within it. It is left as a value readers can copy and compare.
//
// The canonical end position is (rightmost leaf, that leaf's size): one past
// the last element of the last leaf, mirroring how an empty range is
// represented without a sentinel node. Decrementing an end iterator steps
// back into the last live element.
//
// An Iterator keeps addressing its element across any mutation that leaves
// its containing leaf untouched. An insertion or erasure at or before its
// offset in the same leaf, or a split, merge, or borrow involving that leaf,
// leaves it addressing a different element or a discarded leaf, same as a
// stale slice index after a reallocation.
type Iterator[T any] struct {
	leaf *leafNode[T]
	idx  int
}

// Begin returns an iterator at the first element, or the (only valid) end
// position if l is empty.
func (l *BList[T]) Begin() Iterator[T] {
	return Iterator[T]{leaf: leftmostLeaf(l.root), idx: 0}
}

// End returns the canonical end iterator.
func (l *BList[T]) End() Iterator[T] {
	leaf := rightmostLeaf(l.root)
	return Iterator[T]{leaf: leaf, idx: leaf.elems.Size()}
}

// Value returns the element the iterator addresses. Undefined (panics) at
// the end position.
func (it Iterator[T]) Value() T {
	assert(it.idx < it.leaf.elems.Size(), "Value called on end iterator")
	return it.leaf.elems.Get(it.idx)
}

// Equal reports whether it and other address the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.leaf == other.leaf && it.idx == other.idx
}

// Next advances it by one position. Calling Next at the end position is
// undefined.
func (it Iterator[T]) Next() Iterator[T] {
	if it.idx+1 < it.leaf.elems.Size() {
		return Iterator[T]{leaf: it.leaf, idx: it.idx + 1}
	}
	if next := nextLeaf(it.leaf); next != nil {
		return Iterator[T]{leaf: next, idx: 0}
	}
	// Already at the rightmost leaf: the canonical end position.
	return Iterator[T]{leaf: it.leaf, idx: it.leaf.elems.Size()}
}

// Prev steps it back by one position. Calling Prev at begin is undefined.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.idx > 0 {
		return Iterator[T]{leaf: it.leaf, idx: it.idx - 1}
	}
	prev := prevLeaf(it.leaf)
	assert(prev != nil, "Prev called at begin")
	return Iterator[T]{leaf: prev, idx: prev.elems.Size() - 1}
}

// nextLeaf ascends via parent links from leaf until it finds an ancestor
// with a right sibling, then descends leftmost into that sibling. It
// returns nil if leaf is the rightmost leaf in the tree.
func nextLeaf[T any](leaf *leafNode[T]) *leafNode[T] {
	var cur node[T] = leaf
	parent, idx := parentOf[T](cur)
	for parent != nil {
		if idx+1 < parent.children.Size() {
			return leftmostLeaf(parent.children.Get(idx + 1).node)
		}
		cur = parent
		parent, idx = parentOf[T](cur)
	}
	return nil
}

// prevLeaf is the mirror of nextLeaf.
func prevLeaf[T any](leaf *leafNode[T]) *leafNode[T] {
	var cur node[T] = leaf
	parent, idx := parentOf[T](cur)
	for parent != nil {
		if idx > 0 {
			return rightmostLeaf(parent.children.Get(idx - 1).node)
		}
		cur = parent
		parent, idx = parentOf[T](cur)
	}
	return nil
}

// Seq returns a forward iterator sequence over every element of l.
func (l *BList[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.Empty() {
			return
		}
		for it, end := l.Begin(), l.End(); !it.Equal(end); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// SeqReverse returns a reverse iterator sequence over every element of l.
func (l *BList[T]) SeqReverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.Empty() {
			return
		}
		it := l.End()
		begin := l.Begin()
		for {
			it = it.Prev()
			if !yield(it.Value()) {
				return
			}
			if it.Equal(begin) {
				return
			}
		}
	}
}
