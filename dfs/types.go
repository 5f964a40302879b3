// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, child filtering,
// and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNilStart is returned when the start node is nil or an absent handle.
	ErrNilStart = errors.New("dfs: start node is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for an id the traversal never reached.
	ErrNoPath = errors.New("dfs: node not reached")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(start, opts...).
type Option[K comparable] func(*DFSOptions[K])

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, and diagnostics.
// Complexity remains O(n) when filters and hooks are O(1).
type DFSOptions[K comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id K) error

	// OnExit, if non-nil, is invoked after all descendants of a node
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(id K) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterChild, if non-nil, is called for each child ID before recursing.
	// Return true to traverse into that child, false to skip its subtree.
	FilterChild func(id K) bool

	// FromRoot, if true, climbs parent links from the start node and walks the
	// whole tree from its root instead.
	FromRoot bool

	// SkippedChildren tracks how many children were skipped
	// due to FilterChild returning false. Useful for diagnostics.
	SkippedChildren int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No child filtering
//   - Walk from the start node (FromRoot = false)
func DefaultOptions[K comparable]() DFSOptions[K] {
	return DFSOptions[K]{
		Ctx:             context.Background(),
		OnVisit:         nil,
		OnExit:          nil,
		MaxDepth:        -1,
		FilterChild:     nil,
		FromRoot:        false,
		SkippedChildren: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *DFSOptions[K]) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a node is first discovered.
func WithOnVisit[K comparable](fn func(id K) error) Option[K] {
	return func(o *DFSOptions[K]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a node’s descendants have been fully explored.
func WithOnExit[K comparable](fn func(id K) error) Option[K] {
	return func(o *DFSOptions[K]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited; a negative limit is
// reported as ErrOptionViolation.
func WithMaxDepth[K comparable](limit int) Option[K] {
	return func(o *DFSOptions[K]) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterChild returns an Option that filters child IDs.
// If fn(id) == false, that child is skipped and counted in SkippedChildren.
func WithFilterChild[K comparable](fn func(id K) bool) Option[K] {
	return func(o *DFSOptions[K]) {
		o.FilterChild = fn
	}
}

// WithFromRoot returns an Option that starts the walk at the root of the
// start node's tree.
func WithFromRoot[K comparable]() Option[K] {
	return func(o *DFSOptions[K]) {
		o.FromRoot = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// It reports pre-order and post-order, discovery depths, parent links, and
// visited flags, as well as diagnostics like SkippedChildren.
type DFSResult[K comparable] struct {
	// Preorder records nodes in the sequence they were discovered.
	Preorder []K

	// Order records nodes in the sequence they finished (post-order).
	Order []K

	// Depth maps each node ID to its distance (#edges) below the start.
	Depth map[K]int

	// Parent maps each node ID to the ID of the node from which it was discovered.
	// The start node does not appear in this map.
	Parent map[K]K

	// Visited flags which nodes were reached during the traversal.
	Visited map[K]bool

	// SkippedChildren reports how many children were skipped
	// due to FilterChild returning false.
	SkippedChildren int
}

// PathTo returns the IDs from the start node down to dest.
// Returns ErrNoPath if dest was not reached.
func (r *DFSResult[K]) PathTo(dest K) ([]K, error) {
	if !r.Visited[dest] {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	up := []K{dest}
	for cur, ok := r.Parent[dest]; ok; cur, ok = r.Parent[cur] {
		up = append(up, cur)
	}

	return Reverse(up), nil
}
