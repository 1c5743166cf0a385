package rbtree

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func newTreeOf(keys ...int64) *Tree[int64] {
	tree := New[int64]()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func assertRBTreeSanity(t *testing.T, tree *Tree[int64]) {
	t.Helper()
	require.NoError(t, tree.Validate())
}

func entriesOf(pairs ...interface{}) []Entry[int64] {
	var entries []Entry[int64]
	for i := 0; i < len(pairs); i += 2 {
		entries = append(entries, Entry[int64]{Key: int64(pairs[i].(int)), Color: pairs[i+1].(Color)})
	}
	return entries
}

func TestRBTree_InsertAndDelete(t *testing.T) {
	tree := New[int64]()
	_, ok := tree.Max()
	assert.False(t, ok)

	tree.Insert(10)
	tree.Insert(9)
	tree.Insert(12)
	tree.Insert(11)
	tree.Insert(13)

	max, ok := tree.Max()
	assert.True(t, ok)
	assert.Equal(t, int64(13), max)

	min, ok := tree.Min()
	assert.True(t, ok)
	assert.Equal(t, int64(9), min)

	err := tree.Delete(12)
	assert.NoError(t, err, "should delete the node successfully")
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, []int64{9, 10, 11, 13}, tree.Keys())
	assertRBTreeSanity(t, tree)
}

func TestRBTree_basic(t *testing.T) {
	tree := newTreeOf(3000, 4000, 2000)

	// root is always black
	root, ok := tree.RootEntry()
	require.True(t, ok)
	assert.Equal(t, Entry[int64]{Key: 3000, Color: Black}, root)

	assert.Equal(t, entriesOf(2000, Red, 3000, Black, 4000, Red), tree.InorderEntries())

	// should rotate
	tree.Insert(1500)
	tree.Insert(1000)

	assert.NoError(t, tree.Delete(1000))
	assert.NoError(t, tree.Delete(1500))
	assertRBTreeSanity(t, tree)
}

func TestRBTree_InsertAscendingRotates(t *testing.T) {
	tree := New[int64]()
	root := tree.Insert(10)
	key, _ := tree.Key(root)
	assert.Equal(t, int64(10), key)

	tree.Insert(20)
	root = tree.Insert(30)

	key, ok := tree.Key(root)
	require.True(t, ok)
	assert.Equal(t, int64(20), key)

	color, _ := tree.Color(root)
	assert.Equal(t, Black, color)

	left, ok := tree.Left(root)
	require.True(t, ok)
	assertEntry(t, tree, left, 10, Red)

	right, ok := tree.Right(root)
	require.True(t, ok)
	assertEntry(t, tree, right, 30, Red)

	var buf bytes.Buffer
	tree.Fprint(&buf)
	assert.Equal(t, "└── 20(B)\n    ├── 30(R)\n    └── 10(R)\n", buf.String())
	assertRBTreeSanity(t, tree)
}

func assertEntry(t *testing.T, tree *Tree[int64], h Handle, key int64, color Color) {
	t.Helper()
	e, ok := tree.Entry(h)
	if assert.True(t, ok, "handle should be valid") {
		assert.Equal(t, Entry[int64]{Key: key, Color: color}, e)
	}
}

func TestRBTree_DeleteFromSmallTree(t *testing.T) {
	tree := newTreeOf(50, 40, 60, 30, 70)
	assert.Equal(t, entriesOf(30, Red, 40, Black, 50, Black, 60, Black, 70, Red), tree.InorderEntries())

	assert.NoError(t, tree.Delete(40))
	assert.Equal(t, []int64{30, 50, 60, 70}, tree.Keys())
	assert.Equal(t, entriesOf(30, Black, 50, Black, 60, Black, 70, Red), tree.InorderEntries())
	assertRBTreeSanity(t, tree)
}

func TestRBTree_Relations(t *testing.T) {
	tree := newTreeOf(50, 40, 60, 30, 70)

	n30, ok := tree.Search(30)
	require.True(t, ok)

	p, ok := tree.Parent(n30)
	require.True(t, ok)
	assertEntry(t, tree, p, 40, Black)

	g, ok := tree.Grandparent(n30)
	require.True(t, ok)
	assertEntry(t, tree, g, 50, Black)

	u, ok := tree.Uncle(n30)
	require.True(t, ok)
	assertEntry(t, tree, u, 60, Black)

	_, ok = tree.Sibling(n30)
	assert.False(t, ok, "30 has no sibling")

	root, _ := tree.Root()
	_, ok = tree.Parent(root)
	assert.False(t, ok)
	_, ok = tree.Grandparent(root)
	assert.False(t, ok)
	_, ok = tree.Sibling(root)
	assert.False(t, ok)
	_, ok = tree.Uncle(root)
	assert.False(t, ok)
}

func TestRBTree_DeleteErrors(t *testing.T) {
	tree := New[int64]()
	err := tree.Delete(1)
	assert.True(t, errors.Is(err, ErrEmptyTree), "got %v", err)

	tree = newTreeOf(5, 3, 8)
	before := tree.InorderEntries()

	err = tree.Delete(4)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	assert.Equal(t, before, tree.InorderEntries())
	assert.Equal(t, 3, tree.Len())
}

func TestRBTree_DeleteLastNode(t *testing.T) {
	tree := newTreeOf(1)
	assert.NoError(t, tree.Delete(1))
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())

	_, ok := tree.Root()
	assert.False(t, ok)
	assertRBTreeSanity(t, tree)

	err := tree.Delete(1)
	assert.True(t, errors.Is(err, ErrEmptyTree))
}

func TestRBTree_SearchMatchesTraversal(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	tree := New[int64]()
	for i := 0; i < 500; i++ {
		tree.Insert(rnd.Int63n(1000))
	}

	for i := 0; i < 200; i++ {
		_ = tree.Delete(rnd.Int63n(1000))
	}

	inorder := map[int64]bool{}
	for _, k := range tree.Keys() {
		inorder[k] = true
	}

	for k := int64(0); k < 1000; k++ {
		h, ok := tree.Search(k)
		assert.Equal(t, inorder[k], ok, "key %d", k)
		if ok {
			key, _ := tree.Key(h)
			assert.Equal(t, k, key)
		}
	}
}

func TestRBTree_InsertThenDeleteRestoresKeys(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	tree := New[int64]()
	for i := 0; i < 300; i++ {
		tree.Insert(rnd.Int63n(10_000) * 2)
	}

	for i := 0; i < 200; i++ {
		before := tree.Keys()

		// odd keys are never in the tree
		k := rnd.Int63n(10_000)*2 + 1
		tree.Insert(k)
		assert.NoError(t, tree.Delete(k))

		assert.Equal(t, before, tree.Keys())
		assertRBTreeSanity(t, tree)
	}
}

func TestRBTree_InsertThenDeleteRedLeafRestoresColors(t *testing.T) {
	// 25 lands under the black 20 without any recoloring
	tree := newTreeOf(10, 5, 20, 1)
	before := tree.InorderEntries()

	tree.Insert(25)
	assert.NoError(t, tree.Delete(25))
	assert.Equal(t, before, tree.InorderEntries())
}

func TestRBTree_DeleteMissingKeyKeepsTree(t *testing.T) {
	tree := newTreeOf(8, 4, 12, 2, 6, 10, 14)
	before := tree.InorderEntries()
	beforePost := tree.PostorderEntries()

	for _, k := range []int64{0, 1, 3, 5, 7, 9, 11, 13, 15} {
		err := tree.Delete(k)
		assert.True(t, errors.Is(err, ErrNotFound))
	}

	assert.Equal(t, before, tree.InorderEntries())
	assert.Equal(t, beforePost, tree.PostorderEntries())
}

func TestRBTree_HandlesSurviveDelete(t *testing.T) {
	tree := New[int64]()
	handles := map[int64]Handle{}
	for _, k := range []int64{50, 25, 75, 10, 30, 60, 90, 5, 27, 35} {
		handles[k] = tree.Put(k)
	}

	// 25 has two children and is replaced by its successor 27
	deleted := handles[25]
	assert.NoError(t, tree.Delete(25))
	delete(handles, 25)

	_, ok := tree.Key(deleted)
	assert.False(t, ok, "deleted handle should be stale")

	for k, h := range handles {
		key, ok := tree.Key(h)
		if assert.True(t, ok, "handle of %d should still be valid", k) {
			assert.Equal(t, k, key)
		}
	}

	// the released slot is reused, the old handle stays stale
	tree.Put(26)
	_, ok = tree.Key(deleted)
	assert.False(t, ok)

	assert.NoError(t, tree.DeleteHandle(handles[50]))
	assert.False(t, tree.Contains(50))
	assert.True(t, errors.Is(tree.DeleteHandle(handles[50]), ErrNotFound))
	assertRBTreeSanity(t, tree)
}

func TestRBTree_ForeignHandles(t *testing.T) {
	a := newTreeOf(1, 2, 3)
	b := newTreeOf(100, 200, 300)

	h, ok := a.Search(2)
	require.True(t, ok)

	assert.True(t, errors.Is(b.DeleteHandle(h), ErrNotFound))
	assert.Equal(t, []int64{100, 200, 300}, b.Keys())

	_, ok = b.Key(h)
	assert.False(t, ok)
	_, ok = b.Entry(h)
	assert.False(t, ok)
	_, ok = b.Parent(h)
	assert.False(t, ok)

	// the handle still works on the tree that issued it
	key, ok := a.Key(h)
	assert.True(t, ok)
	assert.Equal(t, int64(2), key)
	assert.NoError(t, a.DeleteHandle(h))
	assert.Equal(t, []int64{1, 3}, a.Keys())

	// Clear keeps the tree identity, handles taken before it are stale
	root, ok := b.Root()
	require.True(t, ok)
	b.Clear()
	b.Insert(100)
	_, ok = b.Key(root)
	assert.False(t, ok)

	var zero Handle
	_, ok = a.Key(zero)
	assert.False(t, ok)

	assertRBTreeSanity(t, a)
	assertRBTreeSanity(t, b)
}

func TestRBTree_Duplicates(t *testing.T) {
	tree := New[int64]()
	for i := 0; i < 10; i++ {
		tree.Insert(5)
		tree.Insert(int64(i))
	}

	assert.Equal(t, 20, tree.Len())
	assertRBTreeSanity(t, tree)

	for i := 0; i < 11; i++ {
		assert.NoError(t, tree.Delete(5))
		assertRBTreeSanity(t, tree)
	}

	assert.False(t, tree.Contains(5))
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 6, 7, 8, 9}, tree.Keys())
}

func TestRBTree_RandomInsertSearchAndDelete(t *testing.T) {
	var keys []int64

	tree := New[int64]()
	for i := 1; i < 10_000; i++ {
		v := rand.Int63n(1_000_000)
		keys = append(keys, v)
		tree.Insert(v)
	}
	assertRBTreeSanity(t, tree)

	for i, key := range keys {
		_, ok := tree.Search(key)
		assert.True(t, ok)

		err := tree.Delete(key)
		assert.NoError(t, err, "should find and delete the node")

		if i%500 == 0 {
			assertRBTreeSanity(t, tree)
		}
	}

	assert.Equal(t, 0, tree.Len())
	assertRBTreeSanity(t, tree)

	stats := tree.Stats()
	assert.Equal(t, stats.Alloc, stats.Free)
}

func TestRBTree_StressTenThousand(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	tree := New[int64]()
	for T := 10_000; T > 0; {
		T--
		tree.Insert(int64(2+T) * rnd.Int63n(100))
		if T%1000 == 0 {
			assertRBTreeSanity(t, tree)
		}
	}

	assertRBTreeSanity(t, tree)

	keys := tree.Keys()
	assert.Len(t, keys, 10_000)
	assert.True(t, sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] < keys[j] }))

	// a red-black tree is never deeper than 2*log2(n+1)
	assert.LessOrEqual(t, tree.Height(), 28)
}

func TestRBTree_StressInsertDeleteAndValidate(t *testing.T) {
	tree := New[int64]()
	const total = 20_000
	keyset := make(map[int64]struct{}, total)
	for len(keyset) < total {
		keyset[rand.Int63n(10*total)] = struct{}{}
	}
	keys := make([]int64, 0, total)
	for k := range keyset {
		keys = append(keys, k)
	}

	// insert unique keys
	for _, k := range keys {
		tree.Insert(k)
	}
	assert.Equal(t, tree.Len(), len(keys), "tree size should match unique key count after insert")

	// delete half of the keys randomly
	rand.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i := 0; i < total/2; i++ {
		assert.NoError(t, tree.Delete(keys[i]))
	}

	assertRBTreeSanity(t, tree)
	assert.Equal(t, total/2, tree.Len())

	stats := tree.Stats()
	for i, n := range stats.DeleteCases {
		assert.Greater(t, n, int64(0), "delete case %d should have been exercised", i+1)
	}
	for i, n := range stats.InsertCases {
		assert.Greater(t, n, int64(0), "insert case %d should have been exercised", i+1)
	}
}

func TestRBTree_Clear(t *testing.T) {
	tree := newTreeOf(3, 1, 2)
	h, _ := tree.Search(2)

	tree.Clear()
	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.InorderEntries())

	_, ok := tree.Key(h)
	assert.False(t, ok)

	tree.Insert(4)
	assert.Equal(t, []int64{4}, tree.Keys())
	assertRBTreeSanity(t, tree)

	stats := tree.Stats()
	assert.Equal(t, int64(1), stats.InUse())
}

func TestRBTree_CustomComparator(t *testing.T) {
	tree := NewWithComparator[string](func(a, b string) int {
		// descending
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})

	for _, s := range []string{"b", "d", "a", "c"} {
		tree.Insert(s)
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, tree.Keys())
	assert.NoError(t, tree.Delete("c"))
	assert.Equal(t, []string{"d", "b", "a"}, tree.Keys())
	assert.NoError(t, tree.Validate())
}

func TestRBTree_Traversals(t *testing.T) {
	tree := newTreeOf(50, 40, 60, 30, 70)

	assert.Equal(t, entriesOf(30, Red, 40, Black, 70, Red, 60, Black, 50, Black), tree.PostorderEntries())

	var pre []int64
	tree.Preorder(func(e Entry[int64]) bool {
		pre = append(pre, e.Key)
		return true
	})
	assert.Equal(t, []int64{50, 40, 30, 60, 70}, pre)

	var desc []int64
	tree.InorderReverse(func(e Entry[int64]) bool {
		desc = append(desc, e.Key)
		return len(desc) < 3
	})
	assert.Equal(t, []int64{70, 60, 50}, desc)

	var first []int64
	tree.Inorder(func(e Entry[int64]) bool {
		first = append(first, e.Key)
		return false
	})
	assert.Equal(t, []int64{30}, first)

	assert.Equal(t, 3, tree.Height())
	assert.Equal(t, 2, tree.BlackHeight())
}

func TestRBTree_ValidateReportsViolations(t *testing.T) {
	tree := newTreeOf(50, 40, 60, 30, 70)

	// paint the black 40 red: 30 becomes a red child of a red node and the
	// black-height under 50 is no longer uniform
	n40 := tree.search(40)
	tree.arena.nodes[n40].color = Red

	err := tree.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariantViolation))
	assert.Len(t, multierr.Errors(err), 2)
}

func BenchmarkRBTree_InsertDelete(b *testing.B) {
	b.ReportAllocs()

	tree := New[int64]()
	inserted := make([]int64, 0, b.N)
	for i := 0; i < b.N; i++ {
		if rand.Intn(3) == 0 && len(inserted) > 0 {
			idx := rand.Intn(len(inserted))
			_ = tree.Delete(inserted[idx])
			inserted[idx] = inserted[len(inserted)-1]
			inserted = inserted[:len(inserted)-1]
			continue
		}

		k := rand.Int63n(1_000_000_000)
		tree.Insert(k)
		inserted = append(inserted, k)
	}
}
