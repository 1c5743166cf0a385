package rbtree

import (
	"bytes"

	"github.com/pkg/errors"
)

// rotateLeft
// x is the axis of rotation, y is the node that replaces x's position.
//
//	    x              y
//	  a   y    =>    x   c
//	     b c        a b
//
// we need to:
// 1. move y's left child to the x's right child
// 2. change y's parent to x's parent
// 3. change x's parent to y
//
// Colors are left untouched.
func (t *Tree[K]) rotateLeft(x nodeID) {
	y := t.arena.nodes[x].right
	if y == sentinel {
		t.structuralViolation(x, "rotate left at key %v: the right child is the sentinel", t.arena.nodes[x].key)
	}

	p := t.arena.nodes[x].parent
	b := t.arena.nodes[y].left

	t.arena.setRight(x, b)
	t.arena.setParent(b, x)

	t.arena.setParent(y, p)
	switch {
	case p == sentinel:
		t.root = y
	case x == t.arena.nodes[p].left:
		t.arena.setLeft(p, y)
	default:
		t.arena.setRight(p, y)
	}

	t.arena.setLeft(y, x)
	t.arena.setParent(x, y)
	t.stats.rotations.Add(1)
}

// rotateRight mirrors rotateLeft.
//
//	      y          x
//	    x   c  =>  a   y
//	   a b            b c
func (t *Tree[K]) rotateRight(y nodeID) {
	x := t.arena.nodes[y].left
	if x == sentinel {
		t.structuralViolation(y, "rotate right at key %v: the left child is the sentinel", t.arena.nodes[y].key)
	}

	p := t.arena.nodes[y].parent
	b := t.arena.nodes[x].right

	t.arena.setLeft(y, b)
	t.arena.setParent(b, y)

	t.arena.setParent(x, p)
	switch {
	case p == sentinel:
		t.root = x
	case y == t.arena.nodes[p].left:
		t.arena.setLeft(p, x)
	default:
		t.arena.setRight(p, x)
	}

	t.arena.setRight(x, y)
	t.arena.setParent(y, x)
	t.stats.rotations.Add(1)
}

// rotateToward rotates at p so that the node on the given side moves down.
func (t *Tree[K]) rotateToward(p nodeID, left bool) {
	if left {
		t.rotateLeft(p)
	} else {
		t.rotateRight(p)
	}
}

// structuralViolation logs the sub-tree around n and panics. Nothing has been
// mutated at this point.
func (t *Tree[K]) structuralViolation(n nodeID, format string, args ...interface{}) {
	err := errors.Wrapf(ErrStructuralViolation, format, args...)

	var buf bytes.Buffer
	t.fprintSubTree(&buf, n)
	t.logger.WithError(err).Errorf("structural violation, sub-tree:\n%s", buf.String())
	panic(err)
}
