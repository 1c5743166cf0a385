package rbtree

// insertCase names the step of the insert repair state machine.
type insertCase int

const (
	// insertCase1: the node is the root.
	insertCase1 insertCase = iota
	// insertCase2: the parent is black, nothing to repair.
	insertCase2
	// insertCase3: parent and uncle are red, push the red up to the grandparent.
	insertCase3
	// insertCase4: parent is red and uncle is black, rotate at the grandparent.
	insertCase4

	insertCaseCount = 4
)

func (c insertCase) String() string {
	switch c {
	case insertCase1:
		return "case1"
	case insertCase2:
		return "case2"
	case insertCase3:
		return "case3"
	case insertCase4:
		return "case4"
	}
	return "unknown"
}

func (t *Tree[K]) insert(key K) nodeID {
	n := t.arena.alloc(key)
	t.stats.alloc.Add(1)
	t.size++

	t.insertRecurse(n)
	t.insertRepair(n)
	return n
}

// insertRecurse descends from the root to a sentinel slot and attaches n there.
// Keys strictly less than the current node go left, everything else goes right.
func (t *Tree[K]) insertRecurse(n nodeID) {
	key := t.arena.nodes[n].key

	var y = sentinel
	var x = t.root
	var left bool
	for x != sentinel {
		y = x
		left = t.compare(key, t.arena.nodes[x].key) < 0
		if left {
			x = t.arena.nodes[x].left
		} else {
			x = t.arena.nodes[x].right
		}
	}

	t.arena.setParent(n, y)
	switch {
	case y == sentinel:
		t.root = n
	case left:
		t.arena.setLeft(y, n)
	default:
		t.arena.setRight(y, n)
	}
}

// insertCaseOf decides which repair case applies to the red node n.
func (t *Tree[K]) insertCaseOf(n nodeID) insertCase {
	p := t.parent(n)
	switch {
	case p == sentinel:
		return insertCase1
	case t.arena.color(p) == Black:
		return insertCase2
	case t.arena.color(t.uncle(n)) == Red:
		return insertCase3
	default:
		return insertCase4
	}
}

// insertRepair restores the invariants after n was attached red.
// Case 3 is the only one that continues, one level closer to the root each time.
func (t *Tree[K]) insertRepair(n nodeID) {
	for {
		c := t.insertCaseOf(n)
		t.stats.insertCases[c].Add(1)

		switch c {
		case insertCase1:
			t.insertCase1(n)
			return
		case insertCase2:
			return
		case insertCase3:
			n = t.insertCase3(n)
		case insertCase4:
			t.insertCase4(n)
			return
		}
	}
}

func (t *Tree[K]) insertCase1(n nodeID) {
	t.arena.setColor(n, Black)
}

// insertCase3 recolors and returns the grandparent, which is red now and has to
// be checked again.
func (t *Tree[K]) insertCase3(n nodeID) nodeID {
	g := t.grandparent(n)
	t.arena.setColor(t.parent(n), Black)
	t.arena.setColor(t.uncle(n), Black)
	t.arena.setColor(g, Red)
	return g
}

func (t *Tree[K]) insertCase4(n nodeID) {
	p := t.parent(n)
	g := t.grandparent(n)

	// an inner grandchild is turned into an outer one first
	if n == t.arena.nodes[p].right && p == t.arena.nodes[g].left {
		t.rotateLeft(p)
		n = p
	} else if n == t.arena.nodes[p].left && p == t.arena.nodes[g].right {
		t.rotateRight(p)
		n = p
	}

	t.insertCase4Step2(n)
}

func (t *Tree[K]) insertCase4Step2(n nodeID) {
	p := t.parent(n)
	g := t.grandparent(n)

	if n == t.arena.nodes[p].left {
		t.rotateRight(g)
	} else {
		t.rotateLeft(g)
	}

	t.arena.setColor(p, Black)
	t.arena.setColor(g, Red)
}
