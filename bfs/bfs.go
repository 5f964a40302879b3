// Package bfs provides breadth-first search below any tree.Node,
// returning level order, per-node depths, and parent links.
//
// BFS explores nodes in increasing depth below a start node,
// with optional hooks, depth limiting, and child filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// queueItem pairs a node with its BFS depth.
type queueItem[K comparable, V any] struct {
	node  tree.Node[K, V]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable, V any] struct {
	opts    BFSOptions[K]
	ctx     context.Context
	queue   []queueItem[K, V]
	visited map[K]bool
	res     *BFSResult[K]

	// match, if set, ends the walk at the first visited node it accepts
	match func(tree.Node[K, V]) bool
	found tree.Node[K, V]
}

// BFS runs breadth-first search over the subtree rooted at start,
// applying any number of functional Options.
// Returns ErrNilStart for a nil start, ErrOptionViolation for bad options,
// the context error on cancellation, or any user-supplied hook error.
// On error the partial result gathered so far is returned as well.
func BFS[K comparable, V any](start tree.Node[K, V], opts ...Option[K]) (*BFSResult[K], error) {
	w, err := newWalker(start, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.run(start)
}

// Find returns the first node in level order below start (start included)
// for which pred reports true. The boolean is false when no node matches.
func Find[K comparable, V any](start tree.Node[K, V], pred func(tree.Node[K, V]) bool, opts ...Option[K]) (tree.Node[K, V], bool, error) {
	w, err := newWalker(start, opts)
	if err != nil {
		return nil, false, err
	}
	w.match = pred
	if err = w.run(start); err != nil {
		return nil, false, err
	}

	return w.found, w.found != nil, nil
}

// newWalker validates start and options and prepares empty state.
func newWalker[K comparable, V any](start tree.Node[K, V], opts []Option[K]) (*walker[K, V], error) {
	if tree.IsNil(start) {
		return nil, ErrNilStart
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker[K, V]{
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[K, V], 0, 16),
		visited: make(map[K]bool),
		res: &BFSResult[K]{
			Order:  make([]K, 0, 16),
			Depth:  make(map[K]int),
			Parent: make(map[K]K),
		},
	}, nil
}

// run seeds the queue with start (no parent) and drains it.
func (w *walker[K, V]) run(start tree.Node[K, V]) error {
	w.enqueue(start, 0, nil)

	return w.loop()
}

// enqueue marks n visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker[K, V]) enqueue(n tree.Node[K, V], d int, parent tree.Node[K, V]) {
	id := n.ID()
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != nil {
		w.res.Parent[id] = parent.ID()
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[K, V]{node: n, depth: d})
}

// loop processes the queue until empty, match, error, or cancellation.
func (w *walker[K, V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.found != nil {
			return nil
		}
		w.enqueueChildren(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[K, V]) dequeue() queueItem[K, V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node.ID(), item.depth)

	return item
}

// visit records the node in Order, calls OnVisit, and tests the match.
func (w *walker[K, V]) visit(item queueItem[K, V]) error {
	id := item.node.ID()
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", id, err)
	}
	if w.match != nil && w.match(item.node) {
		w.found = item.node
	}

	return nil
}

// enqueueChildren applies filtering and MaxDepth, and enqueues each unseen child.
func (w *walker[K, V]) enqueueChildren(item queueItem[K, V]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	parentID := item.node.ID()
	for _, child := range item.node.Children() {
		id := child.ID()
		if !w.opts.FilterChild(parentID, id) {
			continue
		}
		// first time seen?
		if !w.visited[id] {
			w.enqueue(child, nextDepth, item.node)
		}
	}
}
