// Package avl implements a height-balanced binary search tree whose nodes are
// addressed both structurally (from the head down) and by id (through an index).
package avl

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree of ids K ordered by values V.
//
// All nodes live in one arena slice; parent and child links are arena slots, so
// rotations only reassign integers. index maps every inserted id to its slot and
// never shrinks. A Tree is not safe for concurrent use.
type Tree[K comparable, V constraints.Ordered] struct {
	nodes []node[K, V] // nodes[0] is the nil sentinel
	index map[K]int32  // id → slot
	root  int32        // head slot
	opts  Options[K]
	stats Stats
}

// FromHead creates a tree holding a single node (id, value): no parent,
// no children, balance 0. It is the only constructor and never fails.
// Complexity: O(Capacity).
func FromHead[K comparable, V constraints.Ordered](id K, value V, opts ...Option[K]) *Tree[K, V] {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tree[K, V]{
		nodes: make([]node[K, V], 1, o.Capacity+1),
		index: make(map[K]int32, o.Capacity),
		opts:  o,
	}
	t.root = t.alloc(id, value, nilSlot)

	return t
}

// alloc appends a detached node with the given parent link and indexes it.
func (t *Tree[K, V]) alloc(id K, value V, parent int32) int32 {
	slot := int32(len(t.nodes))
	t.nodes = append(t.nodes, node[K, V]{id: id, value: value, parent: parent})
	t.index[id] = slot

	return slot
}

// Head returns the current root. The head may change after any Insert.
func (t *Tree[K, V]) Head() Node[K, V] {
	return Node[K, V]{t: t, slot: t.root}
}

// Get looks id up in the index. It reports false if id was never inserted.
// Complexity: O(1).
func (t *Tree[K, V]) Get(id K) (Node[K, V], bool) {
	slot, ok := t.index[id]
	if !ok {
		return Node[K, V]{}, false
	}

	return Node[K, V]{t: t, slot: slot}, true
}

// Has reports whether id is indexed.
func (t *Tree[K, V]) Has(id K) bool {
	_, ok := t.index[id]

	return ok
}

// Len returns the number of nodes, the head included.
func (t *Tree[K, V]) Len() int {
	return len(t.index)
}

// IsEmpty reports whether the tree holds no node. A tree built by FromHead
// always holds at least its head.
func (t *Tree[K, V]) IsEmpty() bool {
	return len(t.index) == 0
}

// Stats returns a snapshot of the structural counters.
func (t *Tree[K, V]) Stats() Stats {
	return t.stats
}

// Insert places a new node (id, value) and restores the AVL balance.
//
// Values less than or equal to a node's value go to its left subtree, greater
// values to its right. At most one rotation (single or double) is performed.
// Returns an error wrapping ErrDuplicateID, with the tree unchanged, if id is
// already present.
// Complexity: O(log n).
func (t *Tree[K, V]) Insert(id K, value V) error {
	if _, ok := t.index[id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateID, id)
	}

	parent, dir := t.place(value)
	slot := t.alloc(id, value, parent)
	t.nodes[parent].c[dir] = slot
	t.stats.Inserts++

	t.rebalance(slot)

	return nil
}

// place walks down from the head and returns the parent slot and the empty
// child slot where value belongs.
func (t *Tree[K, V]) place(value V) (int32, Direction) {
	cur := t.root
	for {
		dir := Right
		if value <= t.nodes[cur].value {
			dir = Left
		}
		next := t.nodes[cur].c[dir]
		if next == nilSlot {
			return cur, dir
		}
		cur = next
	}
}

// side returns the slot of parent that holds child. Panics if child is not a
// child of parent.
func (t *Tree[K, V]) side(parent, child int32) Direction {
	p := &t.nodes[parent]
	switch child {
	case p.c[Left]:
		return Left
	case p.c[Right]:
		return Right
	}
	panic(fmt.Errorf("%w: slot %d is not a child of slot %d", ErrInvariantViolation, child, parent))
}
