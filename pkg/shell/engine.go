package shell

import (
	"io"

	"github.com/c9s/rbtree/pkg/rbtree"
)

//go:generate mockgen -destination=mocks/mock_engine.go -package=mocks . Engine

// Engine is the tree surface the shell drives. *rbtree.Tree[int64] satisfies it.
type Engine interface {
	Insert(key int64) rbtree.Handle
	Delete(key int64) error
	Search(key int64) (rbtree.Handle, bool)
	Entry(h rbtree.Handle) (rbtree.Entry[int64], bool)
	RootEntry() (rbtree.Entry[int64], bool)
	InorderEntries() []rbtree.Entry[int64]
	PostorderEntries() []rbtree.Entry[int64]
	Fprint(w io.Writer)
	Validate() error
	Len() int
	Height() int
	BlackHeight() int
	Stats() rbtree.Stats
}

var _ Engine = (*rbtree.Tree[int64])(nil)
