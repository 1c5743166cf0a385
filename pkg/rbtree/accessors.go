package rbtree

// The relation lookups below return the sentinel (0) when the relation does not
// exist. They are total over every internal node reachable from the root.

func (t *Tree[K]) parent(n nodeID) nodeID {
	if n == sentinel {
		return sentinel
	}
	return t.arena.nodes[n].parent
}

func (t *Tree[K]) grandparent(n nodeID) nodeID {
	return t.parent(t.parent(n))
}

func (t *Tree[K]) sibling(n nodeID) nodeID {
	p := t.parent(n)
	if p == sentinel {
		return sentinel
	}

	if n == t.arena.nodes[p].left {
		return t.arena.nodes[p].right
	}
	return t.arena.nodes[p].left
}

func (t *Tree[K]) uncle(n nodeID) nodeID {
	if t.grandparent(n) == sentinel {
		return sentinel
	}
	return t.sibling(t.parent(n))
}

func (t *Tree[K]) isLeaf(n nodeID) bool {
	return n == sentinel
}

func (t *Tree[K]) isLeftChild(n nodeID) bool {
	p := t.parent(n)
	return p != sentinel && t.arena.nodes[p].left == n
}

// replace links child into the slot n occupies under its parent, or into the
// root slot when n is the root. n keeps its own links.
func (t *Tree[K]) replace(n, child nodeID) {
	p := t.arena.nodes[n].parent
	t.arena.setParent(child, p)

	switch {
	case p == sentinel:
		t.root = child
	case t.arena.nodes[p].left == n:
		t.arena.setLeft(p, child)
	default:
		t.arena.setRight(p, child)
	}
}
