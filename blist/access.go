package blist

import "fmt"

// At returns the element at position i. Fails with ErrOutOfRange if i is not
// in [0, Size()).
func (l *BList[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, l.size)
	}
	leaf, offset := locate(l.root, i)
	return leaf.elems.Get(offset), nil
}

// Get returns the element at position i without bounds checking. Undefined
// (panics) if i is out of range.
func (l *BList[T]) Get(i int) T {
	assert(i >= 0 && i < l.size, "Get index out of range")
	leaf, offset := locate(l.root, i)
	return leaf.elems.Get(offset)
}

// Set overwrites the element at position i without bounds checking.
func (l *BList[T]) Set(i int, value T) {
	assert(i >= 0 && i < l.size, "Set index out of range")
	leaf, offset := locate(l.root, i)
	leaf.elems.Set(offset, value)
}

// locate descends from n to the leaf holding the i-th element of n's
// subtree, scanning child subtree-sizes left to right and subtracting until
// the containing child is found.
func locate[T any](n node[T], i int) (*leafNode[T], int) {
	for {
		switch v := n.(type) {
		case *leafNode[T]:
			return v, i
		case *internalNode[T]:
			found := false
			for _, c := range v.children.Slots() {
				if i < c.size {
					n = c.node
					found = true
					break
				}
				i -= c.size
			}
			assert(found, "locate: index routing exceeded subtree size")
		default:
			panic("blist: unknown node type")
		}
	}
}
