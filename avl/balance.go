package avl

import (
	"fmt"
)

// climbState is the state of the balance maintainer for one insert.
type climbState uint8

const (
	climbing climbState = iota // adjusting ancestors
	settled                    // an ancestor absorbed the growth (balance became 0)
	rotated                    // a rotation restored the subtree height
)

// rebalance walks from the freshly linked node at slot toward the head,
// adjusting each ancestor's balance by the side the walk came from.
//
// The walk ends at the head, at the first ancestor whose balance becomes 0
// (its height did not change), or after the single rotation performed at the
// first ancestor whose |balance| reaches 2.
func (t *Tree[K, V]) rebalance(slot int32) climbState {
	state := climbing
	child := slot
	for parent := t.nodes[child].parent; parent != nilSlot && state == climbing; {
		dir := t.side(parent, child)
		p := &t.nodes[parent]
		p.balance += dir.sign()

		switch p.balance {
		case 0:
			state = settled
		case -1, 1:
			child, parent = parent, p.parent
		case -2, 2:
			t.fix(parent, dir)
			state = rotated
		default:
			panic(fmt.Errorf("%w: balance %d at id %v", ErrInvariantViolation, p.balance, p.id))
		}
	}

	return state
}

// fix restores balance at pivot, which is two levels heavier on side heavy.
// A heavy child leaning the same way needs a single rotation;
// a child leaning the other way (zig-zag) needs a double rotation.
func (t *Tree[K, V]) fix(pivot int32, heavy Direction) {
	child := t.nodes[pivot].c[heavy]
	if child == nilSlot {
		panic(fmt.Errorf("%w: pivot %v has no %s child", ErrInvariantViolation, t.nodes[pivot].id, heavy))
	}

	switch t.nodes[child].balance {
	case heavy.sign():
		t.rotateSingle(pivot, heavy)
	case -heavy.sign():
		t.rotateDouble(pivot, heavy)
	default:
		// after an insert the heavy child always leans one way
		panic(fmt.Errorf("%w: pivot %v has a balanced %s child", ErrInvariantViolation, t.nodes[pivot].id, heavy))
	}
}
