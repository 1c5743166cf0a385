package rbtree

import (
	"fmt"
	"io"
)

// Fprint writes the graph of the whole tree to w, right sub-trees first:
//
//	└── 20(B)
//	    ├── 30(B)
//	    └── 10(B)
func (t *Tree[K]) Fprint(w io.Writer) {
	if t.root == sentinel {
		fmt.Fprintln(w, "<empty>")
		return
	}
	t.fprintSubTree(w, t.root)
}

func (t *Tree[K]) fprintSubTree(w io.Writer, n nodeID) {
	if n == sentinel {
		fmt.Fprintln(w, "<empty>")
		return
	}
	t.printSubTree(w, n, "", true)
}

func (t *Tree[K]) printSubTree(w io.Writer, n nodeID, prefix string, isTail bool) {
	if n == sentinel {
		return
	}

	cur := t.arena.nodes[n]
	fmt.Fprintf(w, "%s%s── %v(%s)\n", prefix, getBranch(isTail), cur.key, cur.color)

	newPrefix := prefix + getIndent(isTail)
	if cur.left != sentinel || cur.right != sentinel {
		if cur.right == sentinel {
			fmt.Fprintf(w, "%s%s── nil\n", newPrefix, getBranch(false))
		} else {
			t.printSubTree(w, cur.right, newPrefix, false)
		}

		if cur.left == sentinel {
			fmt.Fprintf(w, "%s%s── nil\n", newPrefix, getBranch(true))
		} else {
			t.printSubTree(w, cur.left, newPrefix, true)
		}
	}
}

func getBranch(isTail bool) string {
	if isTail {
		return "└"
	}
	return "├"
}

func getIndent(isTail bool) string {
	if isTail {
		return "    "
	}
	return "│   "
}
