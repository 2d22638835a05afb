package blist

import (
	"fmt"

	"github.com/npillmayer/blist/svec"
)

// BList is an ordered sequence of T backed by a tree of small fixed-capacity
// nodes. The zero value is not usable; create one with New or NewDefault.
type BList[T any] struct {
	cfg   Config
	root  node[T]
	size  int
	depth int
}

// New creates an empty BList with the given configuration.
func New[T any](cfg Config) (*BList[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &BList[T]{
		cfg:   cfg,
		root:  newLeaf[T](cfg.NodeCapacity),
		depth: 1,
	}, nil
}

// NewDefault creates an empty BList using DefaultNodeCapacity.
func NewDefault[T any]() *BList[T] {
	l, err := New[T](Config{})
	assert(err == nil, "NewDefault: default config must validate")
	return l
}

// NewFrom creates a BList with the given configuration, populated by
// repeated PushBack over elems in order.
func NewFrom[T any](cfg Config, elems ...T) (*BList[T], error) {
	l, err := New[T](cfg)
	if err != nil {
		return nil, err
	}
	for _, e := range elems {
		l.PushBack(e)
	}
	return l, nil
}

// Config returns the effective configuration of l.
func (l *BList[T]) Config() Config { return l.cfg }

// Empty reports whether l holds no elements.
func (l *BList[T]) Empty() bool { return l.size == 0 }

// Size returns the number of elements in l.
func (l *BList[T]) Size() int { return l.size }

// Depth returns the number of nodes on a root-to-leaf path. An empty tree
// has depth 1 (the root is an empty leaf).
func (l *BList[T]) Depth() int { return l.depth }

// Front returns the first element. Undefined (panics) if l is empty.
func (l *BList[T]) Front() T {
	assert(l.size > 0, "Front called on empty BList")
	v, _ := l.At(0)
	return v
}

// Back returns the last element. Undefined (panics) if l is empty.
func (l *BList[T]) Back() T {
	assert(l.size > 0, "Back called on empty BList")
	v, _ := l.At(l.size - 1)
	return v
}

// Clone returns a deep copy of l: every node is duplicated and parent links
// are rewired to the copies, so mutating the clone never affects l.
func (l *BList[T]) Clone() *BList[T] {
	clone := &BList[T]{cfg: l.cfg, size: l.size, depth: l.depth}
	clone.root = cloneNode[T](l.root, nil, -1)
	return clone
}

func cloneNode[T any](n node[T], parent *internalNode[T], index int) node[T] {
	switch v := n.(type) {
	case *leafNode[T]:
		out := &leafNode[T]{elems: svec.Clone(v.elems), parent: parent, parentIndex: index}
		return out
	case *internalNode[T]:
		children, err := svec.NewCount[child[T]](v.children.Capacity(), v.children.Size())
		assert(err == nil, "cloneNode: child count must fit capacity")
		out := &internalNode[T]{children: children, parent: parent, parentIndex: index}
		for i, c := range v.children.Slots() {
			out.children.Set(i, child[T]{node: cloneNode[T](c.node, out, i), size: c.size})
		}
		return out
	default:
		panic("blist: unknown node type")
	}
}

// Move drains l into a new BList of the same configuration: ownership of
// every node transfers to the returned list, so previously obtained
// iterators and element references into l remain valid on the result. l is
// left empty (size 0, depth 1) with a fresh empty leaf root.
func (l *BList[T]) Move() *BList[T] {
	out := &BList[T]{cfg: l.cfg, root: l.root, size: l.size, depth: l.depth}
	l.root = newLeaf[T](l.cfg.NodeCapacity)
	l.size = 0
	l.depth = 1
	return out
}

func (l *BList[T]) String() string {
	return fmt.Sprintf("BList[size=%d depth=%d]", l.size, l.depth)
}
