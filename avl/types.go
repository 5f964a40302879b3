// Package avl declares the sentinel errors, slot directions, rotation events
// and functional options used by the AVL tree.
package avl

import (
	"errors"
)

// Sentinel errors for AVL tree operations.
var (
	// ErrDuplicateID is returned by Insert when the id is already indexed.
	ErrDuplicateID = errors.New("avl: id already exists")

	// ErrInvariantViolation marks a broken structural invariant. Validate returns
	// it wrapped; the balance maintainer and rotation engine panic with it.
	ErrInvariantViolation = errors.New("avl: invariant violation")
)

// Direction selects a child slot.
type Direction uint8

const (
	// Left is the slot for values less than or equal to the parent's value.
	Left Direction = iota
	// Right is the slot for values strictly greater than the parent's value.
	Right
)

// Opposite returns the other slot.
func (d Direction) Opposite() Direction {
	return 1 - d
}

// sign maps Left to -1 and Right to +1, the unit a balance counter moves by.
func (d Direction) sign() int8 {
	if d == Left {
		return -1
	}

	return 1
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Left {
		return "left"
	}

	return "right"
}

// RotationKind tells single and double rotations apart.
type RotationKind uint8

const (
	// SingleRotation promotes the pivot's heavy child.
	SingleRotation RotationKind = iota + 1
	// DoubleRotation promotes the heavy child's inner child (zig-zag case).
	DoubleRotation
)

// String implements fmt.Stringer.
func (k RotationKind) String() string {
	switch k {
	case SingleRotation:
		return "single"
	case DoubleRotation:
		return "double"
	default:
		return "unknown"
	}
}

// RotationEvent describes one rebalancing step, reported through WithOnRotate.
type RotationEvent[K comparable] struct {
	// Kind is SingleRotation or DoubleRotation.
	Kind RotationKind

	// Heavy is the side of the pivot that became two levels taller.
	Heavy Direction

	// Pivot is the id of the node at which |balance| reached 2.
	Pivot K

	// Promoted is the id of the node that took the pivot's place.
	Promoted K

	// RootChanged reports whether Promoted became the tree's head.
	RootChanged bool
}

// Stats counts structural work performed by a tree since construction.
type Stats struct {
	Inserts         int // successful inserts, the head excluded
	SingleRotations int
	DoubleRotations int
	RootChanges     int // rotations that promoted a new head
}

// Option configures a Tree at construction time.
type Option[K comparable] func(*Options[K])

// Options holds the construction parameters of a Tree.
type Options[K comparable] struct {
	// Capacity preallocates the node arena and the id index.
	Capacity int

	// OnRotate, if non-nil, is called after every completed rotation.
	OnRotate func(ev RotationEvent[K])
}

// DefaultOptions returns Options with no preallocation and no rotation hook.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Capacity: 0,
		OnRotate: nil,
	}
}

// WithCapacity preallocates room for n nodes. Non-positive n is ignored.
func WithCapacity[K comparable](n int) Option[K] {
	return func(o *Options[K]) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithOnRotate registers a hook invoked after each rotation.
// A nil fn leaves the current hook in place.
func WithOnRotate[K comparable](fn func(ev RotationEvent[K])) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnRotate = fn
		}
	}
}
