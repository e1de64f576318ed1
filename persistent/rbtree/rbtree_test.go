package rbtree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tp "github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

func TestTreeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.rbtree")
	defer teardown()
	//
	var tree Tree[int]
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.False(t, tree.Member(0))
	assert.Empty(t, tree.ToSlice())
	assert.True(t, Empty[string]().IsEmpty())
}

func TestTreeInsertAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.rbtree")
	defer teardown()
	//
	var tree Tree[int]
	for i := 1; i <= 7; i++ {
		tree = tree.Insert(i)
		checkInvariants(t, tree)
	}
	t.Logf("tree = \n%s", printTree(tree))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.ToSlice())
	assert.Equal(t, 7, tree.Len())
	assert.True(t, tree.root.color == black)
	assert.Equal(t, 4, tree.root.value, "root after ascending inserts 1…7")
	for i := 1; i <= 7; i++ {
		assert.True(t, tree.Member(i), "expected %d to be member", i)
	}
	assert.False(t, tree.Member(0))
	assert.False(t, tree.Member(8))
}

func TestTreeInsertDuplicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.rbtree")
	defer teardown()
	//
	tree := FromSortedSlice([]int{1, 3, 5, 7, 9})
	same := tree.Insert(5)
	assert.Same(t, tree.root, same.root, "duplicate insert must share the tree")
	assert.Equal(t, tree.Len(), same.Len())
}

func TestTreePersistence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.rbtree")
	defer teardown()
	//
	t1 := Tree[string]{}.Insert("b").Insert("a").Insert("c")
	t2 := t1.Insert("d")
	assert.Equal(t, []string{"a", "b", "c"}, t1.ToSlice())
	assert.Equal(t, []string{"a", "b", "c", "d"}, t2.ToSlice())
	assert.False(t, t1.Member("d"))
	assert.True(t, t2.Member("d"))
	// "a" is off the insertion path of "d", the rotation moves it one level down
	assert.Same(t, t1.root.left, t2.root.left.left)
}

func TestTreeFromSortedSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.rbtree")
	defer teardown()
	//
	for n := 0; n <= 40; n++ {
		values := make([]int, n)
		for i := range values {
			values[i] = 2 * i
		}
		tree := FromSortedSlice(values)
		checkInvariants(t, tree)
		assert.Equal(t, values, tree.ToSlice(), "n = %d", n)
		assert.Equal(t, n, tree.Len())
		if n == 6 {
			t.Logf("tree(6) = \n%s", printTree(tree))
		}
	}
}

func TestTreeFromUnsortedSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.rbtree")
	defer teardown()
	//
	tree := FromSortedSlice([]int{5, 1, 4, 1, 3})
	checkInvariants(t, tree)
	assert.Equal(t, []int{1, 3, 4, 5}, tree.ToSlice())
	assert.Equal(t, 4, tree.Len())
}

func TestTreeAgainstBTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pfds.rbtree")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelInfo)
	rnd := rand.New(rand.NewSource(31))
	model := btree.NewOrderedG[int](4)
	var tree Tree[int]
	for i := 0; i < 1000; i++ {
		v := rnd.Intn(500)
		model.ReplaceOrInsert(v)
		tree = tree.Insert(v)
		if i%100 == 0 {
			checkInvariants(t, tree)
		}
	}
	checkInvariants(t, tree)
	require.Equal(t, model.Len(), tree.Len())
	expected := make([]int, 0, model.Len())
	model.Ascend(func(v int) bool {
		expected = append(expected, v)
		return true
	})
	assert.Equal(t, expected, tree.ToSlice())
	for v := -1; v <= 501; v++ {
		assert.Equal(t, model.Has(v), tree.Member(v), "membership of %d", v)
	}
}

func TestLog2(t *testing.T) {
	for n, l := range map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 7: 2, 8: 3, 1023: 9, 1024: 10} {
		assert.Equal(t, l, log2(n), fmt.Sprintf("log2(%d)", n))
	}
}

// --- Helpers ---------------------------------------------------------------

// checkInvariants asserts that no red node has a red child, that all paths have the
// same number of black nodes, and that values are strictly increasing in-order.
func checkInvariants[T constraints.Ordered](t *testing.T, tree Tree[T]) {
	t.Helper()
	if tree.root.isRed() {
		t.Errorf("root is red")
	}
	var blackHeight func(k *knot[T]) int
	blackHeight = func(k *knot[T]) int {
		if k == nil {
			return 1
		}
		if k.isRed() && (k.left.isRed() || k.right.isRed()) {
			t.Fatalf("red node %v has a red child", k.value)
		}
		l, r := blackHeight(k.left), blackHeight(k.right)
		if l != r {
			t.Fatalf("black heights differ below %v: %d ≠ %d", k.value, l, r)
		}
		if k.color == black {
			return l + 1
		}
		return l
	}
	blackHeight(tree.root)
	values := tree.ToSlice()
	for i := 1; i < len(values); i++ {
		if !(values[i-1] < values[i]) {
			t.Fatalf("values not strictly increasing at %d: %v", i, values)
		}
	}
	if len(values) != tree.Len() {
		t.Errorf("tree reports %d values, has %d", tree.Len(), len(values))
	}
}

func printTree[T constraints.Ordered](tree Tree[T]) string {
	if tree.root == nil {
		return "∅"
	}
	printer := tp.New()
	root := printer.AddBranch(fmt.Sprintf("%v(%s)", tree.root.value, tree.root.color))
	var walk func(tp.Tree, *knot[T])
	walk = func(branch tp.Tree, k *knot[T]) {
		for _, ch := range []*knot[T]{k.left, k.right} {
			if ch == nil {
				branch.AddNode("·")
				continue
			}
			label := fmt.Sprintf("%v(%s)", ch.value, ch.color)
			if ch.left == nil && ch.right == nil {
				branch.AddNode(label)
			} else {
				walk(branch.AddBranch(label), ch)
			}
		}
	}
	walk(root, tree.root)
	return printer.String()
}
