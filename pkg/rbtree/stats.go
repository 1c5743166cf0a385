package rbtree

import "sync/atomic"

// Counters are atomic so that a metrics collector may read them while the owner
// goroutine mutates the tree.
type treeStats struct {
	alloc, free atomic.Int64
	rotations   atomic.Int64
	insertCases [insertCaseCount]atomic.Int64
	deleteCases [deleteCaseCount]atomic.Int64
}

// Stats is a point-in-time copy of the tree counters.
type Stats struct {
	Alloc     int64
	Free      int64
	Rotations int64

	// InsertCases[i] counts how many times insert repair case i+1 ran.
	InsertCases [insertCaseCount]int64

	// DeleteCases[i] counts how many times delete repair case i+1 ran.
	DeleteCases [deleteCaseCount]int64
}

// InUse returns the number of allocated nodes not yet released.
func (s Stats) InUse() int64 {
	return s.Alloc - s.Free
}

func (s *treeStats) snapshot() Stats {
	out := Stats{
		Alloc:     s.alloc.Load(),
		Free:      s.free.Load(),
		Rotations: s.rotations.Load(),
	}

	for i := range s.insertCases {
		out.InsertCases[i] = s.insertCases[i].Load()
	}

	for i := range s.deleteCases {
		out.DeleteCases[i] = s.deleteCases[i].Load()
	}
	return out
}
