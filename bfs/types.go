// Package bfs provides tunable options and error definitions
// for breadth-first search over a tree.Node.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilStart is returned when the start node is nil or absent.
	ErrNilStart = errors.New("bfs: start node is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for an id the traversal never reached.
	ErrNoPath = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[K comparable] func(*BFSOptions[K])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[K comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	// Receives node ID and its depth below the start.
	OnEnqueue func(id K, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id K, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterChild can skip a child (and its whole subtree) by returning false.
	FilterChild func(parent, child K) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all children allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[K comparable]() BFSOptions[K] {
	return BFSOptions[K]{
		Ctx:         context.Background(),
		OnEnqueue:   func(K, int) {},
		OnDequeue:   func(K, int) {},
		OnVisit:     func(K, int) error { return nil },
		MaxDepth:    0,
		FilterChild: func(_, _ K) bool { return true },
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *BFSOptions[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[K comparable](fn func(id K, depth int)) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[K comparable](fn func(id K, depth int)) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search below the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *BFSOptions[K]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterChild skips children when fn returns false.
func WithFilterChild[K comparable](fn func(parent, child K) bool) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.FilterChild = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: node IDs in visit sequence.
//   - Depth: map from node ID to its distance (in edges) below the start.
//   - Parent: map from node ID to its parent in the traversal; the start has none.
type BFSResult[K comparable] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// PathTo reconstructs the path from the start node down to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
