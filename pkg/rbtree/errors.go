package rbtree

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when the key (or handle) is not in the tree.
	ErrNotFound = errors.New("rbtree: key not found")

	// ErrEmptyTree is returned when deleting from an empty tree.
	ErrEmptyTree = errors.New("rbtree: tree is empty")

	// ErrStructuralViolation is raised with panic when a rotation is asked to
	// pivot on the sentinel. The tree can not be trusted after it.
	ErrStructuralViolation = errors.New("rbtree: structural violation")

	// ErrPreconditionViolation is raised with panic when a node with two internal
	// children reaches the one-child splice.
	ErrPreconditionViolation = errors.New("rbtree: precondition violation")

	// ErrInvariantViolation wraps every problem reported by Validate.
	ErrInvariantViolation = errors.New("rbtree: invariant violation")
)
