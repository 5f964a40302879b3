// Package tree defines the read-only capability shared by every tree in lvtree.
//
// A tree.Node exposes exactly what traversal algorithms need and nothing more:
//
//   - ID()       the caller-supplied identity of the node
//   - Value()    the payload the node carries
//   - Children() the present children, in slot order (left before right for binary trees)
//   - Parent()   the parent node, if any
//
// Mutating structures (avl.Tree) hand out values implementing Node; consumers
// such as bfs and dfs accept a Node as their start point and never mutate it.
//
// Nodes are views: a Node obtained before a mutation of its tree may report a
// different parent or children afterwards, but its ID and Value never change.
package tree
