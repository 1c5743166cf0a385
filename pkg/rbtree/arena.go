package rbtree

import (
	"math"
	"sync/atomic"
)

// arenaIDs hands out the owner id of each arena, starting at 1 so that the zero
// Handle belongs to no tree.
var arenaIDs atomic.Uint32

// arena owns every node of a tree. Slot 0 is the sentinel: it is allocated once
// together with the arena, it is always black and it is never written afterwards.
// Writing to it would corrupt every path that ends in it, so all writers go
// through the setters below which refuse the sentinel.
type arena[K any] struct {
	owner uint32
	nodes []node[K]
	free  []nodeID
}

func newArena[K any](capacity int) arena[K] {
	nodes := make([]node[K], 1, capacity+1)
	nodes[sentinel] = node[K]{color: Black}
	return arena[K]{owner: arenaIDs.Add(1), nodes: nodes}
}

// alloc returns a detached red node holding key.
func (a *arena[K]) alloc(key K) nodeID {
	var id nodeID
	if l := len(a.free); l > 0 {
		id = a.free[l-1]
		a.free = a.free[:l-1]
	} else {
		if uint64(len(a.nodes)) >= math.MaxUint32 {
			panic("rbtree: arena is full")
		}
		a.nodes = append(a.nodes, node[K]{})
		id = nodeID(len(a.nodes) - 1)
	}

	n := &a.nodes[id]
	n.key = key
	n.color = Red
	n.left = sentinel
	n.right = sentinel
	n.parent = sentinel
	n.inUse = true
	return id
}

// release returns the slot to the free list. The caller must have unlinked it.
func (a *arena[K]) release(id nodeID) {
	if id == sentinel {
		panic("rbtree: the sentinel can not be released")
	}

	n := &a.nodes[id]
	var zero K
	n.key = zero
	n.left, n.right, n.parent = sentinel, sentinel, sentinel
	n.color = Red
	n.inUse = false
	n.gen++
	a.free = append(a.free, id)
}

func (a *arena[K]) reset() {
	for i := 1; i < len(a.nodes); i++ {
		if a.nodes[i].inUse {
			a.release(nodeID(i))
		}
	}
}

func (a *arena[K]) handle(id nodeID) Handle {
	return Handle{tree: a.owner, id: id, gen: a.nodes[id].gen}
}

// resolve maps a handle back to its slot, returning false for stale handles and
// for handles of another arena.
func (a *arena[K]) resolve(h Handle) (nodeID, bool) {
	if h.tree != a.owner || h.id == sentinel || int(h.id) >= len(a.nodes) {
		return sentinel, false
	}

	n := &a.nodes[h.id]
	if !n.inUse || n.gen != h.gen {
		return sentinel, false
	}
	return h.id, true
}

func (a *arena[K]) color(id nodeID) Color {
	return a.nodes[id].color
}

func (a *arena[K]) setColor(id nodeID, c Color) {
	if id == sentinel {
		panic("rbtree: the sentinel is immutable")
	}
	a.nodes[id].color = c
}

func (a *arena[K]) setLeft(id, child nodeID) {
	if id == sentinel {
		panic("rbtree: the sentinel is immutable")
	}
	a.nodes[id].left = child
}

func (a *arena[K]) setRight(id, child nodeID) {
	if id == sentinel {
		panic("rbtree: the sentinel is immutable")
	}
	a.nodes[id].right = child
}

// setParent is a no-op on the sentinel, which never records a parent.
func (a *arena[K]) setParent(id, parent nodeID) {
	if id == sentinel {
		return
	}
	a.nodes[id].parent = parent
}
