package rbtree

// Inorder traverses the tree in ascending order until cb returns false.
func (t *Tree[K]) Inorder(cb func(e Entry[K]) bool) {
	t.inorderOf(t.root, cb)
}

func (t *Tree[K]) inorderOf(current nodeID, cb func(e Entry[K]) bool) bool {
	if current == sentinel {
		return true
	}

	n := &t.arena.nodes[current]
	if !t.inorderOf(n.left, cb) {
		return false
	}

	if !cb(t.entry(current)) {
		return false
	}

	return t.inorderOf(n.right, cb)
}

// InorderReverse traverses the tree in descending order until cb returns false.
func (t *Tree[K]) InorderReverse(cb func(e Entry[K]) bool) {
	t.inorderReverseOf(t.root, cb)
}

func (t *Tree[K]) inorderReverseOf(current nodeID, cb func(e Entry[K]) bool) bool {
	if current == sentinel {
		return true
	}

	n := &t.arena.nodes[current]
	if !t.inorderReverseOf(n.right, cb) {
		return false
	}

	if !cb(t.entry(current)) {
		return false
	}

	return t.inorderReverseOf(n.left, cb)
}

func (t *Tree[K]) Postorder(cb func(e Entry[K]) bool) {
	t.postorderOf(t.root, cb)
}

func (t *Tree[K]) postorderOf(current nodeID, cb func(e Entry[K]) bool) bool {
	if current == sentinel {
		return true
	}

	n := &t.arena.nodes[current]
	if !t.postorderOf(n.left, cb) || !t.postorderOf(n.right, cb) {
		return false
	}

	return cb(t.entry(current))
}

func (t *Tree[K]) Preorder(cb func(e Entry[K]) bool) {
	t.preorderOf(t.root, cb)
}

func (t *Tree[K]) preorderOf(current nodeID, cb func(e Entry[K]) bool) bool {
	if current == sentinel {
		return true
	}

	if !cb(t.entry(current)) {
		return false
	}

	n := &t.arena.nodes[current]
	return t.preorderOf(n.left, cb) && t.preorderOf(n.right, cb)
}

// InorderEntries returns every (key, color) pair in ascending key order.
func (t *Tree[K]) InorderEntries() []Entry[K] {
	entries := make([]Entry[K], 0, t.size)
	t.Inorder(func(e Entry[K]) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

// PostorderEntries returns every (key, color) pair in post-order.
func (t *Tree[K]) PostorderEntries() []Entry[K] {
	entries := make([]Entry[K], 0, t.size)
	t.Postorder(func(e Entry[K]) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

// Keys returns the keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.Inorder(func(e Entry[K]) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// Height returns the number of nodes on the longest root to leaf path.
func (t *Tree[K]) Height() int {
	return t.heightOf(t.root)
}

func (t *Tree[K]) heightOf(n nodeID) int {
	if n == sentinel {
		return 0
	}
	return 1 + max(t.heightOf(t.arena.nodes[n].left), t.heightOf(t.arena.nodes[n].right))
}

// BlackHeight returns the number of black nodes on the leftmost path from the root
// to a sentinel, the root included. In a valid tree every path has the same count.
func (t *Tree[K]) BlackHeight() int {
	h := 0
	for n := t.root; n != sentinel; n = t.arena.nodes[n].left {
		if t.arena.color(n) == Black {
			h++
		}
	}
	return h
}
