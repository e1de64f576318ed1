package bintree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/btree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTreeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.bintree")
	defer teardown()
	//
	var tree Tree[int]
	assert.True(t, tree.IsEmpty())
	assert.False(t, tree.Member(1))
	assert.Empty(t, tree.ToSlice())
	assert.True(t, Empty[float64]().IsEmpty())
}

func TestTreeFromSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.bintree")
	defer teardown()
	//
	tree := FromSlice([]int{3, 7, 1, 5})
	assert.Equal(t, 5, tree.root.value, "last value inserted first")
	assert.Equal(t, []int{1, 3, 5, 7}, tree.ToSlice())
	for _, v := range []int{1, 3, 5, 7} {
		assert.True(t, tree.Member(v))
	}
	for _, v := range []int{0, 2, 4, 6, 8} {
		assert.False(t, tree.Member(v))
	}
}

func TestTreeInsertShares(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.bintree")
	defer teardown()
	//
	t1 := FromSlice([]int{6, 2, 4})
	t2 := t1.Insert(7)
	assert.Same(t, t1.root.left, t2.root.left, "left subtree off the insertion path")
	assert.NotSame(t, t1.root, t2.root)
	assert.Equal(t, []int{2, 4, 6}, t1.ToSlice())
	assert.Equal(t, []int{2, 4, 6, 7}, t2.ToSlice())
	t3 := t2.Insert(4)
	assert.Same(t, t2.root, t3.root, "duplicate insert returns original tree")
}

func TestTreeSortedInsertDegrades(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.bintree")
	defer teardown()
	//
	var tree Tree[int]
	for i := 0; i < 100; i++ {
		tree = tree.Insert(i)
	}
	assert.Equal(t, 100, tree.depth())
}

func TestTreeAgainstBTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.bintree")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelInfo)
	rnd := rand.New(rand.NewSource(7))
	model := btree.NewOrderedG[int](3)
	var tree Tree[int]
	for i := 0; i < 500; i++ {
		v := rnd.Intn(300)
		model.ReplaceOrInsert(v)
		tree = tree.Insert(v)
	}
	values := tree.ToSlice()
	assert.True(t, sort.IntsAreSorted(values))
	assert.Equal(t, model.Len(), len(values))
	for v := -1; v <= 300; v++ {
		assert.Equal(t, model.Has(v), tree.Member(v), "membership of %d", v)
	}
}

// --- Helpers ---------------------------------------------------------------

// depth returns the number of levels of tree.
func (tree Tree[T]) depth() int {
	type level struct {
		n *node[T]
		d int
	}
	deepest := 0
	stack := []level{{tree.root, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.n == nil {
			continue
		}
		if top.d > deepest {
			deepest = top.d
		}
		stack = append(stack, level{top.n.left, top.d + 1}, level{top.n.right, top.d + 1})
	}
	return deepest
}
