package rbtree

import "github.com/pkg/errors"

// deleteCase names the step of the delete repair state machine.
type deleteCase int

const (
	// deleteCase1: the cursor is at the root, the deficit is gone.
	deleteCase1 deleteCase = iota
	// deleteCase2: red sibling, rotate it above the parent.
	deleteCase2
	// deleteCase3: parent, sibling and nephews black, push the deficit up.
	deleteCase3
	// deleteCase4: red parent, black sibling and nephews, swap their colors.
	deleteCase4
	// deleteCase5: red near nephew, rotate it to the far side.
	deleteCase5
	// deleteCase6: red far nephew, rotate at the parent.
	deleteCase6
	deleteDone

	deleteCaseCount = 6
)

func (c deleteCase) String() string {
	switch c {
	case deleteCase1:
		return "case1"
	case deleteCase2:
		return "case2"
	case deleteCase3:
		return "case3"
	case deleteCase4:
		return "case4"
	case deleteCase5:
		return "case5"
	case deleteCase6:
		return "case6"
	case deleteDone:
		return "done"
	}
	return "unknown"
}

// deleteCursor points at the node carrying the double-black deficit.
// node may be the sentinel, which has no parent of its own, so the parent and the
// side are kept here instead.
type deleteCursor struct {
	node, parent nodeID
	left         bool
}

// delete unlinks n and releases its slot. A node with two internal children first
// trades places with its in-order successor, so the splice below always sees at
// most one internal child. Nodes are moved rather than keys copied, so handles to
// the surviving keys stay valid.
func (t *Tree[K]) delete(n nodeID) {
	if t.arena.nodes[n].left != sentinel && t.arena.nodes[n].right != sentinel {
		successor := t.leftmostOf(t.arena.nodes[n].right)
		t.swapWithSuccessor(n, successor)
	}

	t.deleteOneChild(n)
}

// swapWithSuccessor moves s, the leftmost node of n's right sub-tree, into n's
// position and n into the position s had. Colors travel with the positions.
func (t *Tree[K]) swapWithSuccessor(n, s nodeID) {
	a := &t.arena
	nl, nr := a.nodes[n].left, a.nodes[n].right
	sp, sr := a.nodes[s].parent, a.nodes[s].right
	nc, sc := a.color(n), a.color(s)

	t.replace(n, s)

	a.setLeft(s, nl)
	a.setParent(nl, s)

	if sp == n {
		a.setRight(s, n)
		a.setParent(n, s)
	} else {
		a.setRight(s, nr)
		a.setParent(nr, s)

		// s was the leftmost node, so it hung on the left of its parent
		a.setLeft(sp, n)
		a.setParent(n, sp)
	}

	a.setLeft(n, sentinel)
	a.setRight(n, sr)
	a.setParent(sr, n)

	a.setColor(n, sc)
	a.setColor(s, nc)
}

// deleteOneChild splices out n, which must have at most one internal child.
func (t *Tree[K]) deleteOneChild(n nodeID) {
	left, right := t.arena.nodes[n].left, t.arena.nodes[n].right
	if left != sentinel && right != sentinel {
		panic(errors.Wrapf(ErrPreconditionViolation, "delete one child at key %v: node has two children", t.arena.nodes[n].key))
	}

	child := right
	if t.isLeaf(right) {
		child = left
	}

	cursor := deleteCursor{
		node:   child,
		parent: t.parent(n),
		left:   t.isLeftChild(n),
	}

	t.replace(n, child)

	if t.arena.color(n) == Black {
		if t.arena.color(child) == Red {
			t.arena.setColor(child, Black)
		} else {
			t.deleteRepair(cursor)
		}
	}

	t.arena.release(n)
	t.stats.free.Add(1)
	t.size--
}

// deleteRepair runs the delete cases from case 1 until the deficit is resolved.
func (t *Tree[K]) deleteRepair(c deleteCursor) {
	state := deleteCase1
	for state != deleteDone {
		t.stats.deleteCases[state].Add(1)
		state = t.deleteStep(state, &c)
	}
}

func (t *Tree[K]) deleteStep(state deleteCase, c *deleteCursor) deleteCase {
	switch state {
	case deleteCase1:
		return t.deleteCase1(c)
	case deleteCase2:
		return t.deleteCase2(c)
	case deleteCase3:
		return t.deleteCase3(c)
	case deleteCase4:
		return t.deleteCase4(c)
	case deleteCase5:
		return t.deleteCase5(c)
	case deleteCase6:
		return t.deleteCase6(c)
	}
	return deleteDone
}

func (t *Tree[K]) siblingOf(c *deleteCursor) nodeID {
	if c.left {
		return t.arena.nodes[c.parent].right
	}
	return t.arena.nodes[c.parent].left
}

// nephewsBlack reports whether both children of s are black.
func (t *Tree[K]) nephewsBlack(s nodeID) bool {
	return t.arena.color(t.arena.nodes[s].left) == Black &&
		t.arena.color(t.arena.nodes[s].right) == Black
}

func (t *Tree[K]) deleteCase1(c *deleteCursor) deleteCase {
	if c.parent == sentinel {
		return deleteDone
	}
	return deleteCase2
}

func (t *Tree[K]) deleteCase2(c *deleteCursor) deleteCase {
	s := t.siblingOf(c)
	if t.arena.color(s) == Red {
		t.arena.setColor(c.parent, Red)
		t.arena.setColor(s, Black)
		t.rotateToward(c.parent, c.left)
	}
	return deleteCase3
}

func (t *Tree[K]) deleteCase3(c *deleteCursor) deleteCase {
	s := t.siblingOf(c)
	if t.arena.color(c.parent) == Black &&
		t.arena.color(s) == Black &&
		t.nephewsBlack(s) {
		t.arena.setColor(s, Red)

		p := c.parent
		c.node = p
		c.parent = t.parent(p)
		c.left = t.isLeftChild(p)
		return deleteCase1
	}
	return deleteCase4
}

func (t *Tree[K]) deleteCase4(c *deleteCursor) deleteCase {
	s := t.siblingOf(c)
	if t.arena.color(c.parent) == Red &&
		t.arena.color(s) == Black &&
		t.nephewsBlack(s) {
		t.arena.setColor(s, Red)
		t.arena.setColor(c.parent, Black)
		return deleteDone
	}
	return deleteCase5
}

func (t *Tree[K]) deleteCase5(c *deleteCursor) deleteCase {
	s := t.siblingOf(c)
	if t.arena.color(s) != Black {
		return deleteCase6
	}

	sl, sr := t.arena.nodes[s].left, t.arena.nodes[s].right
	if c.left && t.arena.color(sr) == Black && t.arena.color(sl) == Red {
		t.arena.setColor(s, Red)
		t.arena.setColor(sl, Black)
		t.rotateRight(s)
	} else if !c.left && t.arena.color(sl) == Black && t.arena.color(sr) == Red {
		t.arena.setColor(s, Red)
		t.arena.setColor(sr, Black)
		t.rotateLeft(s)
	}
	return deleteCase6
}

func (t *Tree[K]) deleteCase6(c *deleteCursor) deleteCase {
	s := t.siblingOf(c)
	t.arena.setColor(s, t.arena.color(c.parent))
	t.arena.setColor(c.parent, Black)

	if c.left {
		t.arena.setColor(t.arena.nodes[s].right, Black)
		t.rotateLeft(c.parent)
	} else {
		t.arena.setColor(t.arena.nodes[s].left, Black)
		t.rotateRight(c.parent)
	}
	return deleteDone
}
