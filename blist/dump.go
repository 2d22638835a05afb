package blist

import (
	"fmt"
	"io"
)

// ToDot writes the internal node structure of l in Graphviz DOT format, for
// debugging. Leaves show their live elements; internal nodes show the
// cached subtree size of each child.
func (l *BList[T]) ToDot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=10,shape=record];\n")
	id := 0
	dumpNode[T](w, l.root, &id)
	io.WriteString(w, "}\n")
}

func dumpNode[T any](w io.Writer, n node[T], id *int) int {
	myID := *id
	*id++
	switch v := n.(type) {
	case *leafNode[T]:
		fmt.Fprintf(w, "\t\"%d\" [label=\"leaf | %v\"];\n", myID, v.elems.Slots())
	case *internalNode[T]:
		fmt.Fprintf(w, "\t\"%d\" [label=\"internal\"];\n", myID)
		for i, c := range v.children.Slots() {
			childID := dumpNode[T](w, c.node, id)
			fmt.Fprintf(w, "\t\"%d\" -> \"%d\" [label=\"%d: size=%d\"];\n", myID, childID, i, c.size)
		}
	default:
		panic("blist: unknown node type")
	}
	return myID
}
