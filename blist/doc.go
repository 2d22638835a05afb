/*
Package blist provides an in-memory, mutable B-tree-structured ordered
sequence, indexed purely by position rather than by key.

A BList keeps its elements in the leaves of a balanced tree whose nodes are
backed by svec.SVec, so every node has a small fixed capacity and inner
nodes stay shallow and wide instead of deep and narrow. Unlike a plain
slice, insertion and removal in the middle of a large BList do not require
shifting every following element, only the elements of the leaf (and,
on a split or merge, its immediate neighbours) that positional index falls
into.

Nodes are mutated in place and carry parent back-references, so structural
changes (split, borrow, merge, root collapse/grow) touch only the nodes on
the path from the root to the affected leaf plus, at most, one sibling at
each level.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package blist

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
