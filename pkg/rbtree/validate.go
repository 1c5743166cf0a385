package rbtree

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Validate checks the red-black invariants and the link structure of the whole
// tree and returns every violation it finds. Each one wraps ErrInvariantViolation.
func (t *Tree[K]) Validate() (err error) {
	violation := func(format string, args ...interface{}) {
		err = multierr.Append(err, errors.Wrapf(ErrInvariantViolation, format, args...))
	}

	s := t.arena.nodes[sentinel]
	if s.color != Black {
		violation("sentinel is not black")
	}

	if s.left != sentinel || s.right != sentinel || s.parent != sentinel {
		violation("sentinel has links: left=%d right=%d parent=%d", s.left, s.right, s.parent)
	}

	if t.root == sentinel {
		if t.size != 0 {
			violation("empty tree has size %d", t.size)
		}
		return err
	}

	root := t.arena.nodes[t.root]
	if root.color != Black {
		violation("root %v is not black", root.key)
	}

	if root.parent != sentinel {
		violation("root %v has parent %d", root.key, root.parent)
	}

	count := 0
	_ = t.validateOf(t.root, &count, violation)

	if count != t.size {
		violation("tree has %d reachable nodes, size is %d", count, t.size)
	}

	if count > len(t.arena.nodes) {
		return err
	}

	var prev *K
	t.Inorder(func(e Entry[K]) bool {
		if prev != nil && t.compare(*prev, e.Key) > 0 {
			violation("keys out of order: %v before %v", *prev, e.Key)
		}
		key := e.Key
		prev = &key
		return true
	})

	return err
}

// validateOf checks the sub-tree at n and returns its black-height, counting n.
func (t *Tree[K]) validateOf(n nodeID, count *int, violation func(format string, args ...interface{})) int {
	if n == sentinel {
		return 1
	}

	*count++
	if *count > len(t.arena.nodes) {
		// a cycle; bail out before recursing forever
		violation("cycle detected at key %v", t.arena.nodes[n].key)
		return 0
	}

	cur := t.arena.nodes[n]
	if !cur.inUse {
		violation("released slot %d is linked into the tree", n)
	}

	for _, child := range []nodeID{cur.left, cur.right} {
		if child == sentinel {
			continue
		}

		if t.arena.nodes[child].parent != n {
			violation("child %v of %v links to parent %d", t.arena.nodes[child].key, cur.key, t.arena.nodes[child].parent)
		}

		if cur.color == Red && t.arena.color(child) == Red {
			violation("red node %v has red child %v", cur.key, t.arena.nodes[child].key)
		}
	}

	lh := t.validateOf(cur.left, count, violation)
	rh := t.validateOf(cur.right, count, violation)
	if lh != rh {
		violation("black-height differs under %v: left %d, right %d", cur.key, lh, rh)
	}

	if cur.color == Black {
		return lh + 1
	}
	return lh
}
