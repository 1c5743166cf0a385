package rbtree

import (
	"cmp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Comparator returns a negative number when a < b, zero when a == b and a positive
// number when a > b. It must describe a total order.
type Comparator[K any] func(a, b K) int

type options struct {
	logger   logrus.FieldLogger
	capacity int
}

type Option func(o *options)

// WithLogger sets the logger used to report structural violations before the
// tree panics. The tree logs nothing else.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCapacity pre-allocates room for n nodes.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// Tree is a red-black tree whose nodes live in an arena and reference each other
// by index.
//
// Tree is not safe for concurrent use. If multiple goroutines access a tree and at
// least one of them modifies it, access must be serialized externally. Only Stats
// may be called concurrently with a mutation.
type Tree[K any] struct {
	arena   arena[K]
	root    nodeID
	size    int
	compare Comparator[K]
	logger  logrus.FieldLogger

	stats treeStats
}

// New returns an empty tree ordered by cmp.Compare.
func New[K cmp.Ordered](opts ...Option) *Tree[K] {
	return NewWithComparator[K](cmp.Compare[K], opts...)
}

// NewWithComparator returns an empty tree ordered by compare.
func NewWithComparator[K any](compare Comparator[K], opts ...Option) *Tree[K] {
	o := options{
		logger: logrus.WithField("component", "rbtree"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[K]{
		arena:   newArena[K](o.capacity),
		root:    sentinel,
		compare: compare,
		logger:  o.logger,
	}
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.size
}

func (t *Tree[K]) IsEmpty() bool {
	return t.root == sentinel
}

// Stats returns a copy of the allocation, rotation and repair case counters.
func (t *Tree[K]) Stats() Stats {
	return t.stats.snapshot()
}

// Clear releases every node. Handles taken before Clear become stale.
func (t *Tree[K]) Clear() {
	t.stats.free.Add(int64(t.size))
	t.arena.reset()
	t.root = sentinel
	t.size = 0
}

// Root returns the handle of the root node.
func (t *Tree[K]) Root() (Handle, bool) {
	if t.root == sentinel {
		return Handle{}, false
	}
	return t.arena.handle(t.root), true
}

// RootEntry returns the key and color of the root node.
func (t *Tree[K]) RootEntry() (Entry[K], bool) {
	if t.root == sentinel {
		return Entry[K]{}, false
	}
	return t.entry(t.root), true
}

// Insert adds key to the tree and returns the handle of the root, which may have
// changed after rebalancing. Equal keys are kept, placed to the right.
func (t *Tree[K]) Insert(key K) Handle {
	n := t.insert(key)

	root := n
	for t.parent(root) != sentinel {
		root = t.parent(root)
	}
	return t.arena.handle(root)
}

// Put adds key to the tree and returns the handle of the new node.
func (t *Tree[K]) Put(key K) Handle {
	return t.arena.handle(t.insert(key))
}

// Search looks up key. The second value is false when key is not in the tree.
func (t *Tree[K]) Search(key K) (Handle, bool) {
	n := t.search(key)
	if n == sentinel {
		return Handle{}, false
	}
	return t.arena.handle(n), true
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.search(key) != sentinel
}

// Delete removes one node holding key.
// It returns ErrEmptyTree on an empty tree and ErrNotFound when key is absent,
// leaving the tree unchanged in both cases.
func (t *Tree[K]) Delete(key K) error {
	if t.root == sentinel {
		return errors.Wrapf(ErrEmptyTree, "can not delete key %v", key)
	}

	n := t.search(key)
	if n == sentinel {
		return errors.Wrapf(ErrNotFound, "can not delete key %v", key)
	}

	t.delete(n)
	return nil
}

// DeleteHandle removes the node named by h. A stale handle or a handle of
// another tree returns ErrNotFound and leaves the tree unchanged.
func (t *Tree[K]) DeleteHandle(h Handle) error {
	n, ok := t.arena.resolve(h)
	if !ok {
		return errors.Wrap(ErrNotFound, "stale or foreign handle")
	}

	t.delete(n)
	return nil
}

// Key returns the key stored at h.
func (t *Tree[K]) Key(h Handle) (K, bool) {
	n, ok := t.arena.resolve(h)
	if !ok {
		var zero K
		return zero, false
	}
	return t.arena.nodes[n].key, true
}

// Color returns the color of the node at h.
func (t *Tree[K]) Color(h Handle) (Color, bool) {
	n, ok := t.arena.resolve(h)
	if !ok {
		return Black, false
	}
	return t.arena.color(n), true
}

// Entry returns the key and color of the node at h.
func (t *Tree[K]) Entry(h Handle) (Entry[K], bool) {
	n, ok := t.arena.resolve(h)
	if !ok {
		return Entry[K]{}, false
	}
	return t.entry(n), true
}

func (t *Tree[K]) Parent(h Handle) (Handle, bool) {
	return t.relation(h, t.parent)
}

func (t *Tree[K]) Grandparent(h Handle) (Handle, bool) {
	return t.relation(h, t.grandparent)
}

func (t *Tree[K]) Sibling(h Handle) (Handle, bool) {
	return t.relation(h, t.sibling)
}

func (t *Tree[K]) Uncle(h Handle) (Handle, bool) {
	return t.relation(h, t.uncle)
}

func (t *Tree[K]) Left(h Handle) (Handle, bool) {
	return t.relation(h, func(n nodeID) nodeID { return t.arena.nodes[n].left })
}

func (t *Tree[K]) Right(h Handle) (Handle, bool) {
	return t.relation(h, func(n nodeID) nodeID { return t.arena.nodes[n].right })
}

func (t *Tree[K]) relation(h Handle, rel func(n nodeID) nodeID) (Handle, bool) {
	n, ok := t.arena.resolve(h)
	if !ok {
		return Handle{}, false
	}

	m := rel(n)
	if m == sentinel {
		return Handle{}, false
	}
	return t.arena.handle(m), true
}

// Min returns the smallest key.
func (t *Tree[K]) Min() (K, bool) {
	n := t.leftmostOf(t.root)
	if n == sentinel {
		var zero K
		return zero, false
	}
	return t.arena.nodes[n].key, true
}

// Max returns the largest key.
func (t *Tree[K]) Max() (K, bool) {
	n := t.rightmostOf(t.root)
	if n == sentinel {
		var zero K
		return zero, false
	}
	return t.arena.nodes[n].key, true
}

func (t *Tree[K]) search(key K) nodeID {
	current := t.root
	for current != sentinel {
		c := t.compare(key, t.arena.nodes[current].key)
		switch {
		case c < 0:
			current = t.arena.nodes[current].left
		case c > 0:
			current = t.arena.nodes[current].right
		default:
			return current
		}
	}
	return sentinel
}

func (t *Tree[K]) leftmostOf(current nodeID) nodeID {
	if current == sentinel {
		return sentinel
	}

	for t.arena.nodes[current].left != sentinel {
		current = t.arena.nodes[current].left
	}
	return current
}

func (t *Tree[K]) rightmostOf(current nodeID) nodeID {
	if current == sentinel {
		return sentinel
	}

	for t.arena.nodes[current].right != sentinel {
		current = t.arena.nodes[current].right
	}
	return current
}

func (t *Tree[K]) entry(n nodeID) Entry[K] {
	return Entry[K]{Key: t.arena.nodes[n].key, Color: t.arena.nodes[n].color}
}
