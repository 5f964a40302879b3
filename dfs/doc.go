// Package dfs implements depth‑first traversal and predicate search below any
// tree.Node.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre‑order and post‑order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Child filtering (skips whole subtrees)
//   - Walking from the root of the start node's tree
//   - Find: returns the first node in pre‑order accepted by a predicate.
//
// Why:
//   - Render trees as outlines (pre‑order with depths)
//   - Evaluate bottom‑up properties (post‑order)
//   - Locate nodes by payload without an index
//
// Key Types:
//
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterChild, FromRoot
//   - DFSResult: collects pre‑order, post‑order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS, Find:  Time O(n), Memory O(n) for the result, O(h) stack
//
// Errors:
//
//   - ErrNilStart             start node is nil or an absent handle
//   - ErrOptionViolation      invalid option (negative MaxDepth)
//   - ErrNoPath               PathTo for an id that was not reached
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
//
// Functions:
//
//   - DFS(start tree.Node\[K, V], opts ...Option\[K]) (\*DFSResult\[K], error)
//   - Find(start, pred, opts...) (tree.Node\[K, V], bool, error)
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithOnExit(),
//     WithMaxDepth(), WithFilterChild(), WithFromRoot()
package dfs
