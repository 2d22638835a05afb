package blist

import (
	"fmt"

	"github.com/npillmayer/blist/svec"
)

// Insert places value so that it occupies position i, shifting everything
// from i onward one position later. Fails with ErrOutOfRange unless
// 0 <= i <= Size().
func (l *BList[T]) Insert(i int, value T) error {
	if i < 0 || i > l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, l.size)
	}
	leaf, offset := locateForInsert(l.root, i)
	l.insertAt(leaf, offset, value)
	l.size++
	return nil
}

// Emplace is an alias for Insert, matching spec.md's naming.
func (l *BList[T]) Emplace(i int, value T) error {
	return l.Insert(i, value)
}

// PushBack appends value at the end.
func (l *BList[T]) PushBack(value T) {
	leaf := rightmostLeaf(l.root)
	l.insertAt(leaf, leaf.elems.Size(), value)
	l.size++
}

// PushFront prepends value at the beginning.
func (l *BList[T]) PushFront(value T) {
	leaf := leftmostLeaf(l.root)
	l.insertAt(leaf, 0, value)
	l.size++
}

// EmplaceBack and EmplaceFront alias PushBack and PushFront.
func (l *BList[T]) EmplaceBack(value T)  { l.PushBack(value) }
func (l *BList[T]) EmplaceFront(value T) { l.PushFront(value) }

// locateForInsert descends from n to the leaf and local offset at which
// inserting a new element puts it at position i of n's subtree, for any i in
// [0, subtree size of n]. Unlike locate, i == a child's cached size is
// legal: it addresses the position just past that child's last element.
func locateForInsert[T any](n node[T], i int) (*leafNode[T], int) {
	for {
		switch v := n.(type) {
		case *leafNode[T]:
			return v, i
		case *internalNode[T]:
			slots := v.children.Slots()
			found := false
			for idx, c := range slots {
				if i <= c.size || idx == len(slots)-1 {
					n = c.node
					found = true
					break
				}
				i -= c.size
			}
			assert(found, "locateForInsert: index routing exceeded subtree size")
		default:
			panic("blist: unknown node type")
		}
	}
}

func leftmostLeaf[T any](n node[T]) *leafNode[T] {
	for {
		switch v := n.(type) {
		case *leafNode[T]:
			return v
		case *internalNode[T]:
			n = v.children.Get(0).node
		default:
			panic("blist: unknown node type")
		}
	}
}

func rightmostLeaf[T any](n node[T]) *leafNode[T] {
	for {
		switch v := n.(type) {
		case *leafNode[T]:
			return v
		case *internalNode[T]:
			n = v.children.Get(v.children.Size() - 1).node
		default:
			panic("blist: unknown node type")
		}
	}
}

// insertAt inserts value at local offset within leaf, splitting and
// promoting as needed, then bumps every ancestor's cached subtree size by
// one to account for the new element.
func (l *BList[T]) insertAt(leaf *leafNode[T], offset int, value T) {
	if !leaf.elems.Full() {
		_, err := leaf.elems.Emplace(offset, value)
		assert(err == nil, "insertAt: emplace into non-full leaf must not fail")
		bumpAncestorSizes[T](leaf, 1)
		return
	}
	left, right, leftSize, rightSize := splitLeafAndInsert(leaf, offset, value)
	T().Debugf("blist: leaf split, sizes %d/%d", leftSize, rightSize)
	l.promoteSplit(left, leftSize, right, rightSize, 1)
}

// splitLeafAndInsert splits an overflowing leaf into two, with value placed
// according to offset, and returns the (reused, in place) left leaf, the
// freshly created right leaf, and their resulting sizes.
func splitLeafAndInsert[T any](leaf *leafNode[T], offset int, value T) (*leafNode[T], *leafNode[T], int, int) {
	capacity := leaf.elems.Capacity()
	half := capacity / 2
	slots := leaf.elems.Slots()
	temp := make([]T, 0, capacity+1)
	temp = append(temp, slots[:offset]...)
	temp = append(temp, value)
	temp = append(temp, slots[offset:]...)

	leftElems, err := svec.NewFrom[T](capacity, temp[:half]...)
	assert(err == nil, "splitLeafAndInsert: left half must fit capacity")
	rightElems, err := svec.NewFrom[T](capacity, temp[half:]...)
	assert(err == nil, "splitLeafAndInsert: right half must fit capacity")

	leaf.elems = leftElems
	right := newLeaf[T](capacity)
	right.elems = rightElems
	return leaf, right, leftElems.Size(), rightElems.Size()
}

// promoteSplit installs right as left's new right sibling in left's parent,
// recursing upward if that overflows the parent's child array, or growing a
// new root if left had none. delta is the net change in element count this
// split and its triggering edit contributed, bubbled to every ancestor above
// the point where the tree structure stopped changing.
func (l *BList[T]) promoteSplit(left node[T], leftSize int, right node[T], rightSize int, delta int) {
	parent, idx := parentOf[T](left)
	if parent == nil {
		root := newInternal[T](l.cfg.NodeCapacity)
		root.children.PushBack(child[T]{node: left, size: leftSize})
		root.children.PushBack(child[T]{node: right, size: rightSize})
		setParent[T](left, root, 0)
		setParent[T](right, root, 1)
		l.root = root
		l.depth++
		T().Debugf("blist: grew new root, depth now %d", l.depth)
		return
	}

	c := parent.children.Get(idx)
	c.size = leftSize
	parent.children.Set(idx, c)

	if !parent.children.Full() {
		_, err := parent.children.Emplace(idx+1, child[T]{node: right, size: rightSize})
		assert(err == nil, "promoteSplit: emplace into non-full parent must not fail")
		setParent[T](right, parent, idx+1)
		reindexChildren(parent, idx+2)
		bumpAncestorSizes[T](parent, delta)
		return
	}

	newRight := splitInternalAndInsertChild(parent, idx+1, child[T]{node: right, size: rightSize})
	T().Debugf("blist: internal node split at depth propagation")
	l.promoteSplit(parent, subtreeSize[T](parent), newRight, subtreeSize[T](newRight), delta)
}

// splitInternalAndInsertChild splits an overflowing internal node's children
// array into two, with newChild placed at insertIdx, and returns the
// freshly created right sibling (parent is reused as the left sibling).
func splitInternalAndInsertChild[T any](parent *internalNode[T], insertIdx int, newChild child[T]) *internalNode[T] {
	capacity := parent.children.Capacity()
	half := capacity / 2
	slots := parent.children.Slots()
	temp := make([]child[T], 0, capacity+1)
	temp = append(temp, slots[:insertIdx]...)
	temp = append(temp, newChild)
	temp = append(temp, slots[insertIdx:]...)

	leftChildren, err := svec.NewFrom[child[T]](capacity, temp[:half]...)
	assert(err == nil, "splitInternalAndInsertChild: left half must fit capacity")
	rightChildren, err := svec.NewFrom[child[T]](capacity, temp[half:]...)
	assert(err == nil, "splitInternalAndInsertChild: right half must fit capacity")

	parent.children = leftChildren
	reindexChildren(parent, 0)

	right := newInternal[T](capacity)
	right.children = rightChildren
	reindexChildren(right, 0)
	return right
}
