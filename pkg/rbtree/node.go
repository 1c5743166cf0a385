package rbtree

// Color is the RB Tree color
type Color bool

const (
	Red   = Color(false)
	Black = Color(true)
)

func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// nodeID addresses a slot in the tree arena.
// Slot 0 is the sentinel, so a zero nodeID also means "no node".
type nodeID uint32

const sentinel nodeID = 0

/*
node
A red node always has black children.
A black node may have red or black children.
*/
type node[K any] struct {
	left, right, parent nodeID
	key                 K
	color               Color

	// gen is bumped every time the slot is released
	gen   uint32
	inUse bool
}

// Handle names a node linked into a tree. It goes stale once the node is deleted,
// and every accessor taking a Handle reports absence for a stale one or for a
// handle issued by another tree.
type Handle struct {
	tree uint32
	id   nodeID
	gen  uint32
}

// Entry is a (key, color) pair produced by the traversals.
type Entry[K any] struct {
	Key   K     `json:"key" yaml:"key"`
	Color Color `json:"color" yaml:"color"`
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
