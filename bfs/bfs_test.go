package bfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/avl"
	"github.com/katalvlaran/lvtree/bfs"
	"github.com/katalvlaran/lvtree/tree"
)

// cascade builds 30(10(9, 20), 50(40, 60)) from a descending insert run
// and returns its head as a tree.Node.
func cascade(t testing.TB) (*avl.Tree[string, int], tree.Node[string, int]) {
	t.Helper()
	tr := avl.FromHead("60", 60)
	for _, v := range []int{50, 40, 30, 20, 10, 9} {
		require.NoError(t, tr.Insert(strconv.Itoa(v), v))
	}

	return tr, tr.Head()
}

// menu is an n-ary tree.Node used to check that traversal is not tied to avl.
type menu struct {
	id    string
	items []*menu
	up    *menu
}

func (m *menu) ID() string { return m.id }
func (m *menu) Value() int { return len(m.items) }

func (m *menu) add(id string) *menu {
	c := &menu{id: id, up: m}
	m.items = append(m.items, c)
	return c
}

func (m *menu) Children() []tree.Node[string, int] {
	out := make([]tree.Node[string, int], len(m.items))
	for i, c := range m.items {
		out[i] = c
	}
	return out
}

func (m *menu) Parent() (tree.Node[string, int], bool) {
	if m.up == nil {
		return nil, false
	}
	return m.up, true
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string, int](nil)
	assert.ErrorIs(t, err, bfs.ErrNilStart)

	// the zero avl handle stands for "no node"
	_, err = bfs.BFS[string, int](avl.Node[string, int]{})
	assert.ErrorIs(t, err, bfs.ErrNilStart)

	_, head := cascade(t)
	_, err = bfs.BFS(head, bfs.WithMaxDepth[string](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, _, err = bfs.Find[string, int](nil, func(tree.Node[string, int]) bool { return true })
	assert.ErrorIs(t, err, bfs.ErrNilStart)
}

// TestBFS_LevelOrder checks order, depths and parents on a balanced tree.
func TestBFS_LevelOrder(t *testing.T) {
	_, head := cascade(t)

	res, err := bfs.BFS(head)
	require.NoError(t, err)
	assert.Equal(t, []string{"30", "10", "50", "9", "20", "40", "60"}, res.Order)
	assert.Equal(t, map[string]int{"30": 0, "10": 1, "50": 1, "9": 2, "20": 2, "40": 2, "60": 2}, res.Depth)
	assert.Equal(t, map[string]string{"10": "30", "50": "30", "9": "10", "20": "10", "40": "50", "60": "50"}, res.Parent)
}

// TestBFS_Subtree ensures BFS only explores below the start node.
func TestBFS_Subtree(t *testing.T) {
	tr, _ := cascade(t)
	n50, ok := tr.Get("50")
	require.True(t, ok)

	res, err := bfs.BFS[string, int](n50)
	require.NoError(t, err)
	assert.Equal(t, []string{"50", "40", "60"}, res.Order)
	assert.Equal(t, 1, res.Depth["60"])
	_, hasParent := res.Parent["50"]
	assert.False(t, hasParent, "the start has no parent in the result")
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	_, head := cascade(t)

	res, err := bfs.BFS(head, bfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"30", "10", "50"}, res.Order)

	res, err = bfs.BFS(head, bfs.WithMaxDepth[string](0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 7)

	res, err = bfs.BFS(head, bfs.WithMaxDepth[string](10))
	require.NoError(t, err)
	assert.Len(t, res.Order, 7)
}

// TestBFS_FilterChild shows how filtering prunes a whole subtree.
func TestBFS_FilterChild(t *testing.T) {
	_, head := cascade(t)

	res, err := bfs.BFS(head, bfs.WithFilterChild(func(parent, child string) bool {
		return !(parent == "30" && child == "10")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"30", "50", "40", "60"}, res.Order)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	_, head := cascade(t)

	var enq, deq, vis []string
	entry := func(id string, d int) string { return id + "@" + strconv.Itoa(d) }

	_, err := bfs.BFS(head,
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, entry(id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, entry(id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, entry(id, d)); return nil }),
	)
	require.NoError(t, err)

	want := []string{"30@0", "10@1", "50@1", "9@2", "20@2", "40@2", "60@2"}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, deq)
	assert.Equal(t, want, vis)
}

// TestBFS_OnVisitAbort returns the hook error wrapped, with the partial result.
func TestBFS_OnVisitAbort(t *testing.T) {
	_, head := cascade(t)
	stop := errors.New("stop")

	res, err := bfs.BFS(head, bfs.WithOnVisit(func(id string, _ int) error {
		if id == "50" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Contains(t, err.Error(), "50")
	assert.Equal(t, []string{"30", "10", "50"}, res.Order)
}

// TestBFS_PathTo covers a leaf, the start itself, and an unreached id.
func TestBFS_PathTo(t *testing.T) {
	_, head := cascade(t)
	res, err := bfs.BFS(head)
	require.NoError(t, err)

	path, err := res.PathTo("20")
	require.NoError(t, err)
	assert.Equal(t, []string{"30", "10", "20"}, path)

	path, err = res.PathTo("30")
	require.NoError(t, err)
	assert.Equal(t, []string{"30"}, path)

	_, err = res.PathTo("missing")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	_, head := cascade(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate

	_, err := bfs.BFS(head, bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFind returns the shallowest match, or false.
func TestFind(t *testing.T) {
	_, head := cascade(t)

	n, ok, err := bfs.Find(head, func(n tree.Node[string, int]) bool { return n.Value() > 35 })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "50", n.ID(), "50 is shallower than 40 and 60")

	n, ok, err = bfs.Find(head, func(n tree.Node[string, int]) bool { return n.Value() < 0 })
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, n)

	// the start node itself is tested first
	n, ok, err = bfs.Find(head, func(n tree.Node[string, int]) bool { return n.Value() >= 30 })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "30", n.ID())

	// visits stop at the match
	var visited []string
	_, ok, err = bfs.Find(head,
		func(n tree.Node[string, int]) bool { return n.ID() == "9" },
		bfs.WithOnVisit(func(id string, _ int) error { visited = append(visited, id); return nil }))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"30", "10", "50", "9"}, visited)
}

// TestBFS_NaryTree walks a hand-built n-ary tree.
func TestBFS_NaryTree(t *testing.T) {
	root := &menu{id: "root"}
	file := root.add("file")
	edit := root.add("edit")
	root.add("help")
	file.add("open")
	file.add("save")
	edit.add("undo")

	res, err := bfs.BFS[string, int](root)
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "file", "edit", "help", "open", "save", "undo"}, res.Order)

	path, err := res.PathTo("undo")
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "edit", "undo"}, path)
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same tree do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	_, head := cascade(t)
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(head); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		assert.NoError(t, <-errs, "concurrent run #%d", i)
	}
}
