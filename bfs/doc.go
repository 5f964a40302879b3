// Package bfs provides breadth-first search below any tree.Node,
// returning level order, per-node depths, and parent links.
//
// What
//
//   - Explore nodes in non-decreasing depth below a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence (level order)
//   - Depth: map from node ID → edges below the start
//   - Parent: map from node ID → its parent in the traversal
//   - Find returns the first node in level order accepted by a predicate,
//     i.e. the shallowest match.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows pruning whole subtrees via WithFilterChild.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Children are enqueued in the order tree.Node.Children returns them
//	(left before right for avl), so the visit sequence is fully reproducible.
//
// Complexity (n = nodes below start)
//
//   - Time:   O(n)
//   - Memory: O(n)   (queue, Depth map, Parent map, visited set)
//
// Usage
//
//		// Basic BFS with no options:
//		result, err := bfs.BFS[string, int](t.Head())
//		if err != nil {
//	      // handle one of:
//	      // ErrNilStart, ErrOptionViolation, context errors, or hook errors
//		}
//
//		// With functional options:
//		result, err := bfs.BFS[string, int](
//		    t.Head(),
//		    bfs.WithContext[string](ctx),
//		    bfs.WithMaxDepth[string](3),
//		    bfs.WithFilterChild(func(parent, child string) bool { return child != "skip" }),
//		    bfs.WithOnVisit(func(id string, depth int) error { /* ... */ return nil }),
//		)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):        set a custom context for cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterChild(fn):     skip a child and its subtree when fn(parent,child)==false.
//   - WithOnEnqueue(fn):       hook before a node is enqueued.
//   - WithOnDequeue(fn):       hook immediately before visiting a node.
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrNilStart            if the start node is nil or an absent handle.
//   - ErrOptionViolation     if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath              from PathTo for an id that was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
