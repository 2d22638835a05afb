package blist

import (
	"fmt"

	"github.com/npillmayer/blist/svec"
)

// Erase removes and returns the element at position i. Fails with
// ErrOutOfRange unless 0 <= i < Size().
func (l *BList[T]) Erase(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, l.size)
	}
	leaf, offset := locate(l.root, i)
	value := leaf.elems.Get(offset)
	leaf.elems.Erase(offset)
	bumpAncestorSizes[T](leaf, -1)
	l.size--
	l.rebalance(leaf)
	return value, nil
}

// Clear removes every element. The list collapses to an empty leaf root,
// same as after constructing a fresh empty BList.
func (l *BList[T]) Clear() {
	l.root = newLeaf[T](l.cfg.NodeCapacity)
	l.size = 0
	l.depth = 1
}

// rebalance restores the occupancy invariant for n after one of its entries
// was removed, borrowing from a sibling, merging with one, or collapsing the
// root, recursing upward as a merge may underflow the parent in turn.
func (l *BList[T]) rebalance(n node[T]) {
	parent, idx := parentOf[T](n)
	if parent == nil {
		if in, ok := n.(*internalNode[T]); ok && in.children.Size() == 1 {
			only := in.children.Get(0).node
			setParent[T](only, nil, -1)
			l.root = only
			l.depth--
			T().Debugf("blist: collapsed single-child root, depth now %d", l.depth)
		}
		return
	}

	minEntries := l.cfg.half()
	if localEntryCount[T](n) >= minEntries {
		return
	}

	if idx > 0 {
		leftSib := parent.children.Get(idx - 1).node
		if localEntryCount[T](leftSib) > minEntries {
			borrowLeft[T](leftSib, n)
			fixCachedSize[T](parent, idx-1)
			fixCachedSize[T](parent, idx)
			return
		}
	}
	if idx < parent.children.Size()-1 {
		rightSib := parent.children.Get(idx + 1).node
		if localEntryCount[T](rightSib) > minEntries {
			borrowRight[T](n, rightSib)
			fixCachedSize[T](parent, idx)
			fixCachedSize[T](parent, idx+1)
			return
		}
	}

	if idx > 0 {
		leftSib := parent.children.Get(idx - 1).node
		mergeSiblings[T](leftSib, n)
		fixCachedSize[T](parent, idx-1)
		removeChild[T](parent, idx)
	} else {
		rightSib := parent.children.Get(idx + 1).node
		mergeSiblings[T](n, rightSib)
		fixCachedSize[T](parent, idx)
		removeChild[T](parent, idx+1)
	}
	T().Debugf("blist: merged underflowing node at index %d", idx)
	l.rebalance(parent)
}

func fixCachedSize[T any](parent *internalNode[T], idx int) {
	c := parent.children.Get(idx)
	c.size = subtreeSize[T](c.node)
	parent.children.Set(idx, c)
}

func removeChild[T any](parent *internalNode[T], idx int) {
	parent.children.Erase(idx)
	reindexChildren(parent, idx)
}

// borrowLeft moves sib's last entry to the front of n.
func borrowLeft[T any](sib, n node[T]) {
	switch sv := sib.(type) {
	case *leafNode[T]:
		nv := n.(*leafNode[T])
		last := sv.elems.Size() - 1
		v := sv.elems.Get(last)
		sv.elems.Erase(last)
		_, err := nv.elems.Emplace(0, v)
		assert(err == nil, "borrowLeft: emplace into under-capacity leaf must not fail")
	case *internalNode[T]:
		nv := n.(*internalNode[T])
		last := sv.children.Size() - 1
		c := sv.children.Get(last)
		sv.children.Erase(last)
		_, err := nv.children.Emplace(0, c)
		assert(err == nil, "borrowLeft: emplace into under-capacity internal node must not fail")
		setParent[T](c.node, nv, 0)
		reindexChildren(nv, 1)
	default:
		panic("blist: unknown node type")
	}
}

// borrowRight moves sib's first entry to the back of n.
func borrowRight[T any](n, sib node[T]) {
	switch sv := sib.(type) {
	case *leafNode[T]:
		nv := n.(*leafNode[T])
		v := sv.elems.Get(0)
		sv.elems.Erase(0)
		_, err := nv.elems.Emplace(nv.elems.Size(), v)
		assert(err == nil, "borrowRight: emplace into under-capacity leaf must not fail")
	case *internalNode[T]:
		nv := n.(*internalNode[T])
		c := sv.children.Get(0)
		sv.children.Erase(0)
		idx := nv.children.Size()
		_, err := nv.children.Emplace(idx, c)
		assert(err == nil, "borrowRight: emplace into under-capacity internal node must not fail")
		setParent[T](c.node, nv, idx)
		reindexChildren(sv, 0)
	default:
		panic("blist: unknown node type")
	}
}

// mergeSiblings concatenates right's entries onto the end of left's,
// leaving right to be discarded by the caller.
func mergeSiblings[T any](left, right node[T]) {
	switch lv := left.(type) {
	case *leafNode[T]:
		rv := right.(*leafNode[T])
		mergeLeaves(lv, rv)
	case *internalNode[T]:
		rv := right.(*internalNode[T])
		mergeInternal(lv, rv)
	default:
		panic("blist: unknown node type")
	}
}

func mergeLeaves[T any](left, right *leafNode[T]) {
	capacity := left.elems.Capacity()
	merged := make([]T, 0, left.elems.Size()+right.elems.Size())
	merged = append(merged, left.elems.Slots()...)
	merged = append(merged, right.elems.Slots()...)
	out, err := svec.NewFrom[T](capacity, merged...)
	assert(err == nil, "mergeLeaves: combined size must fit capacity")
	left.elems = out
}

func mergeInternal[T any](left, right *internalNode[T]) {
	capacity := left.children.Capacity()
	merged := make([]child[T], 0, left.children.Size()+right.children.Size())
	merged = append(merged, left.children.Slots()...)
	merged = append(merged, right.children.Slots()...)
	out, err := svec.NewFrom[child[T]](capacity, merged...)
	assert(err == nil, "mergeInternal: combined size must fit capacity")
	left.children = out
	reindexChildren(left, 0)
}
