package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvtree/tree"
)

// nilSlot is the arena slot standing for "no node". nodes[0] is never a real node.
const nilSlot int32 = 0

// node is one arena entry. Children are owned top-down through c; parent is a
// plain back-link used for climbing and never owns anything.
type node[K comparable, V any] struct {
	id      K
	value   V
	balance int8     // height(right) - height(left)
	parent  int32    // nilSlot for the head
	c       [2]int32 // c[Left], c[Right]
}

// Node is a read handle on a tree node. The zero Node is the absent node.
//
// A handle stays valid for the lifetime of its tree: ID and Value never change,
// while Parent, Left, Right and Balance always report the current structure.
type Node[K comparable, V constraints.Ordered] struct {
	t    *Tree[K, V]
	slot int32
}

// IsNil reports whether n refers to no node.
func (n Node[K, V]) IsNil() bool {
	return n.t == nil || n.slot == nilSlot
}

func (n Node[K, V]) raw() *node[K, V] {
	return &n.t.nodes[n.slot]
}

// ID returns the node's identity. Panics on a nil handle.
func (n Node[K, V]) ID() K {
	return n.raw().id
}

// Value returns the node's ordered payload. Panics on a nil handle.
func (n Node[K, V]) Value() V {
	return n.raw().value
}

// Balance returns height(right) - height(left), always in {-1, 0, 1}
// between inserts.
func (n Node[K, V]) Balance() int {
	return int(n.raw().balance)
}

// Child returns the child in slot d; the result IsNil when the slot is empty.
func (n Node[K, V]) Child(d Direction) Node[K, V] {
	c := n.raw().c[d]
	if c == nilSlot {
		return Node[K, V]{}
	}

	return Node[K, V]{t: n.t, slot: c}
}

// Left is Child(Left).
func (n Node[K, V]) Left() Node[K, V] { return n.Child(Left) }

// Right is Child(Right).
func (n Node[K, V]) Right() Node[K, V] { return n.Child(Right) }

// Up returns the parent handle; the result IsNil for the head.
func (n Node[K, V]) Up() Node[K, V] {
	p := n.raw().parent
	if p == nilSlot {
		return Node[K, V]{}
	}

	return Node[K, V]{t: n.t, slot: p}
}

// Children implements tree.Node: present children, left first.
func (n Node[K, V]) Children() []tree.Node[K, V] {
	out := make([]tree.Node[K, V], 0, 2)
	for _, c := range n.raw().c {
		if c != nilSlot {
			out = append(out, Node[K, V]{t: n.t, slot: c})
		}
	}

	return out
}

// Parent implements tree.Node.
func (n Node[K, V]) Parent() (tree.Node[K, V], bool) {
	p := n.Up()
	if p.IsNil() {
		return nil, false
	}

	return p, true
}

// compile-time check
var _ tree.Node[string, int] = Node[string, int]{}
