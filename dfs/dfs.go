// Package dfs implements depth‑first search below any tree.Node.
// It supports cancellation, pre‑ and post‑order hooks, depth and child limits,
// walking from the root, predicate search, and diagnostics.
//
// Key features:
//   - DFS(start, opts...): traverse the subtree below start, or the whole tree via WithFromRoot
//   - Find(start, pred, opts...): first node in pre-order accepted by pred
//   - Hooks: OnVisit (pre‑order) & OnExit (post‑order) with error aborts
//   - Limits: MaxDepth, FilterChild, SkippedChildren diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(n) for traversal (n = nodes reached), plus overhead of hooks and filters.
//   - Memory: O(h) recursion stack (h = height) and O(n) for metadata maps.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook on node discovery; error aborts traversal.
//   - WithOnExit(fn)            post-order hook after exploring descendants, before recording.
//   - WithMaxDepth(limit)       stops recursion beyond given depth (>=0).
//   - WithFilterChild(fn)       filters child IDs; return false to skip the subtree.
//   - WithFromRoot()            climbs to the root before walking.
//
// Errors:
//
//   - ErrNilStart               if start is nil.
//   - ErrOptionViolation        if an option is invalid.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// errFound ends a Find walk at the first match.
var errFound = errors.New("dfs: found")

// dfsWalker encapsulates state during DFS.
type dfsWalker[K comparable, V any] struct {
	opts DFSOptions[K] // traversal options
	res  *DFSResult[K] // result collector

	match func(tree.Node[K, V]) bool
	found tree.Node[K, V]
}

// DFS performs depth‑first search below start. If opts include WithFromRoot,
// it first climbs to the root of start's tree.
// Returns DFSResult, or an error (with the partial result) if aborted by
// context or hook.
func DFS[K comparable, V any](start tree.Node[K, V], opts ...Option[K]) (*DFSResult[K], error) {
	walker, root, err := newWalker(start, opts)
	if err != nil {
		return nil, err
	}
	if err = walker.traverse(root, 0); err != nil {
		return walker.res, err
	}

	// Expose diagnostics
	walker.res.SkippedChildren = walker.opts.SkippedChildren

	return walker.res, nil
}

// Find returns the first node in pre-order below start (start included) for
// which pred reports true. The boolean is false when no node matches.
func Find[K comparable, V any](start tree.Node[K, V], pred func(tree.Node[K, V]) bool, opts ...Option[K]) (tree.Node[K, V], bool, error) {
	walker, root, err := newWalker(start, opts)
	if err != nil {
		return nil, false, err
	}
	walker.match = pred
	err = walker.traverse(root, 0)
	switch {
	case errors.Is(err, errFound):
		return walker.found, true, nil
	case err != nil:
		return nil, false, err
	}

	return nil, false, nil
}

// newWalker validates input, applies options, and resolves the walk's root.
func newWalker[K comparable, V any](start tree.Node[K, V], opts []Option[K]) (*dfsWalker[K, V], tree.Node[K, V], error) {
	// 1. Validate start
	if tree.IsNil(start) {
		return nil, nil, ErrNilStart
	}

	// 2. Apply options
	dopts := DefaultOptions[K]()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, nil, dopts.err
	}

	// 3. Resolve root
	if dopts.FromRoot {
		start = tree.Root(start)
	}

	res := &DFSResult[K]{
		Preorder: make([]K, 0, 16),
		Order:    make([]K, 0, 16),
		Depth:    make(map[K]int),
		Parent:   make(map[K]K),
		Visited:  make(map[K]bool),
	}

	return &dfsWalker[K, V]{opts: dopts, res: res}, start, nil
}

// traverse visits node n at given depth, recursing into its children.
// It honors context cancellation, depth limit, hooks, and filtering.
func (w *dfsWalker[K, V]) traverse(n tree.Node[K, V], depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	id := n.ID()
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Preorder = append(w.res.Preorder, id)

	// 3. Pre‑order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			// abort and clear post‑order
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
		}
	}
	if w.match != nil && w.match(n) {
		w.found = n

		return errFound
	}

	// 4. Explore each child, unless the depth limit is reached
	for _, c := range w.children(n, depth) {
		cid := c.ID()

		// Child filtering
		if w.opts.FilterChild != nil && !w.opts.FilterChild(cid) {
			w.opts.SkippedChildren++
			continue
		}

		// Recurse on unvisited
		if !w.res.Visited[cid] {
			w.res.Parent[cid] = id
			if err := w.traverse(c, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post‑order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", id, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}

// children returns the children of n to explore, or none once depth has
// reached MaxDepth.
func (w *dfsWalker[K, V]) children(n tree.Node[K, V], depth int) []tree.Node[K, V] {
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	return n.Children()
}
