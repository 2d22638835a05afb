package blist

import "fmt"

// Validate checks every structural invariant of l: uniform leaf depth,
// occupancy bounds, correct parent back-references, and correctly cached
// subtree sizes. It is meant for tests, not hot paths.
func (l *BList[T]) Validate() error {
	if l == nil {
		return fmt.Errorf("%w: nil list", ErrInvalidConfig)
	}
	if l.root == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidConfig)
	}
	size, depth, err := l.checkNode(l.root, nil, -1, true)
	if err != nil {
		return err
	}
	if size != l.size {
		return fmt.Errorf("%w: cached size %d does not match counted size %d", ErrInvalidConfig, l.size, size)
	}
	if depth != l.depth {
		return fmt.Errorf("%w: cached depth %d does not match counted depth %d", ErrInvalidConfig, l.depth, depth)
	}
	return nil
}

func (l *BList[T]) checkNode(n node[T], wantParent *internalNode[T], wantIndex int, isRoot bool) (size int, depth int, err error) {
	parent, idx := parentOf[T](n)
	if parent != wantParent || idx != wantIndex {
		return 0, 0, fmt.Errorf("%w: parent link mismatch (got parent=%p idx=%d, want parent=%p idx=%d)",
			ErrInvalidConfig, parent, idx, wantParent, wantIndex)
	}

	half := l.cfg.half()
	switch v := n.(type) {
	case *leafNode[T]:
		count := v.elems.Size()
		if count > l.cfg.NodeCapacity {
			return 0, 0, fmt.Errorf("%w: leaf holds %d elements, capacity %d", ErrInvalidConfig, count, l.cfg.NodeCapacity)
		}
		if !isRoot && count < half {
			return 0, 0, fmt.Errorf("%w: non-root leaf holds %d elements, minimum %d", ErrInvalidConfig, count, half)
		}
		return count, 1, nil

	case *internalNode[T]:
		childCount := v.children.Size()
		if childCount > l.cfg.NodeCapacity {
			return 0, 0, fmt.Errorf("%w: internal node holds %d children, capacity %d", ErrInvalidConfig, childCount, l.cfg.NodeCapacity)
		}
		if !isRoot && childCount < half {
			return 0, 0, fmt.Errorf("%w: non-root internal node holds %d children, minimum %d", ErrInvalidConfig, childCount, half)
		}
		if childCount == 0 {
			return 0, 0, fmt.Errorf("%w: internal node has no children", ErrInvalidConfig)
		}
		var total int
		var childDepth int
		for i, c := range v.children.Slots() {
			cSize, cDepth, cErr := l.checkNode(c.node, v, i, false)
			if cErr != nil {
				return 0, 0, cErr
			}
			if cSize != c.size {
				return 0, 0, fmt.Errorf("%w: cached subtree size %d at index %d does not match actual %d", ErrInvalidConfig, c.size, i, cSize)
			}
			total += cSize
			if i == 0 {
				childDepth = cDepth
			} else if cDepth != childDepth {
				return 0, 0, fmt.Errorf("%w: non-uniform leaf depth across children", ErrInvalidConfig)
			}
		}
		return total, childDepth + 1, nil

	default:
		return 0, 0, fmt.Errorf("%w: unknown node type", ErrInvalidConfig)
	}
}
