package blist

import "github.com/npillmayer/blist/svec"

// node is implemented by both leafNode and internalNode, giving the tree a
// common type to store as a child pointer or tree root. A non-root node's
// parent and parentIndex are weak, non-owning back-references maintained by
// whichever node currently owns it; the root has parent == nil.
type node[T any] interface {
	isLeaf() bool
}

// leafNode owns the SVec holding its elements.
type leafNode[T any] struct {
	elems       *svec.SVec[T]
	parent      *internalNode[T]
	parentIndex int
}

func (l *leafNode[T]) isLeaf() bool { return true }

// child is one entry of an internal node's child array: a strong owning
// pointer to a subtree plus a cached element count for that subtree, used to
// route positional lookups without descending.
type child[T any] struct {
	node node[T]
	size int
}

// internalNode owns the SVec holding its children.
type internalNode[T any] struct {
	children    *svec.SVec[child[T]]
	parent      *internalNode[T]
	parentIndex int
}

func (n *internalNode[T]) isLeaf() bool { return false }

func newLeaf[T any](capacity int) *leafNode[T] {
	elems, err := svec.New[T](capacity)
	assert(err == nil, "newLeaf: invalid node capacity")
	return &leafNode[T]{elems: elems, parentIndex: -1}
}

func newInternal[T any](capacity int) *internalNode[T] {
	children, err := svec.New[child[T]](capacity)
	assert(err == nil, "newInternal: invalid node capacity")
	return &internalNode[T]{children: children, parentIndex: -1}
}

// setParent installs n as the parentIndex-th child of p, wiring n's back
// reference regardless of whether n is a leaf or an internal node.
func setParent[T any](n node[T], p *internalNode[T], index int) {
	switch v := n.(type) {
	case *leafNode[T]:
		v.parent, v.parentIndex = p, index
	case *internalNode[T]:
		v.parent, v.parentIndex = p, index
	default:
		panic("blist: unknown node type")
	}
}

func parentOf[T any](n node[T]) (*internalNode[T], int) {
	switch v := n.(type) {
	case *leafNode[T]:
		return v.parent, v.parentIndex
	case *internalNode[T]:
		return v.parent, v.parentIndex
	default:
		panic("blist: unknown node type")
	}
}

// subtreeSize returns the number of elements reachable from n: the live
// element count for a leaf, or the sum of cached child sizes for an internal
// node (recomputed from scratch, used only when rebuilding caches).
func subtreeSize[T any](n node[T]) int {
	switch v := n.(type) {
	case *leafNode[T]:
		return v.elems.Size()
	case *internalNode[T]:
		total := 0
		for _, c := range v.children.Slots() {
			total += c.size
		}
		return total
	default:
		panic("blist: unknown node type")
	}
}

// reindexChildren fixes the parentIndex of every child of n starting at
// from, after an insertion or removal shifted their positions.
func reindexChildren[T any](n *internalNode[T], from int) {
	slots := n.children.Slots()
	for i := from; i < len(slots); i++ {
		setParent(slots[i].node, n, i)
	}
}

// localEntryCount returns the number of entries held directly by n: live
// elements for a leaf, children for an internal node.
func localEntryCount[T any](n node[T]) int {
	switch v := n.(type) {
	case *leafNode[T]:
		return v.elems.Size()
	case *internalNode[T]:
		return v.children.Size()
	default:
		panic("blist: unknown node type")
	}
}

// bumpAncestorSizes adjusts the cached subtree size of n's entry in its
// parent, and its parent's entry in turn, all the way to the root, by
// delta. It is called after n's own element count has already changed.
func bumpAncestorSizes[T any](n node[T], delta int) {
	parent, idx := parentOf[T](n)
	for parent != nil {
		c := parent.children.Get(idx)
		c.size += delta
		parent.children.Set(idx, c)
		n = parent
		parent, idx = parentOf[T](n)
	}
}
