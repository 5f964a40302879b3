package avl

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Validate checks every structural invariant of t and returns the first
// violation found, wrapped in ErrInvariantViolation:
//
//   - order:   left subtree values <= node value <= right subtree values; with
//     distinct values the right side is strictly greater (a rotation can move an
//     equal value to the right of its twin)
//   - balance: each counter equals height(right)-height(left) and lies in {-1,0,1}
//   - parent:  every child links back to its parent; the head has no parent
//   - index:   every reachable node is indexed under its id, and nothing else is
//
// Complexity: O(n).
func (t *Tree[K, V]) Validate() error {
	if t.root == nilSlot {
		return fmt.Errorf("%w: tree has no head", ErrInvariantViolation)
	}
	if p := t.nodes[t.root].parent; p != nilSlot {
		return fmt.Errorf("%w: head %v has parent slot %d", ErrInvariantViolation, t.nodes[t.root].id, p)
	}

	v := validator[K, V]{t: t}
	if _, err := v.check(t.root, nil, nil); err != nil {
		return err
	}
	if v.seen != len(t.index) {
		return fmt.Errorf("%w: %d nodes reachable, %d indexed", ErrInvariantViolation, v.seen, len(t.index))
	}
	if arena := len(t.nodes) - 1; arena != len(t.index) {
		return fmt.Errorf("%w: %d nodes allocated, %d indexed", ErrInvariantViolation, arena, len(t.index))
	}

	return nil
}

// validator carries the reachable-node count through the recursive check.
type validator[K comparable, V constraints.Ordered] struct {
	t    *Tree[K, V]
	seen int
}

// check validates the subtree at slot, whose values must satisfy lo <= v <= hi
// (nil bound = unbounded), and returns its height.
func (v *validator[K, V]) check(slot int32, lo, hi *V) (int, error) {
	if slot == nilSlot {
		return 0, nil
	}
	v.seen++
	n := &v.t.nodes[slot]

	if idx, ok := v.t.index[n.id]; !ok || idx != slot {
		return 0, fmt.Errorf("%w: id %v not indexed at slot %d", ErrInvariantViolation, n.id, slot)
	}
	if (lo != nil && n.value < *lo) || (hi != nil && n.value > *hi) {
		return 0, fmt.Errorf("%w: id %v value %v out of order", ErrInvariantViolation, n.id, n.value)
	}

	for _, c := range n.c {
		if c != nilSlot && v.t.nodes[c].parent != slot {
			return 0, fmt.Errorf("%w: child %v does not link back to %v", ErrInvariantViolation, v.t.nodes[c].id, n.id)
		}
	}

	value := n.value
	lh, err := v.check(n.c[Left], lo, &value)
	if err != nil {
		return 0, err
	}
	rh, err := v.check(n.c[Right], &value, hi)
	if err != nil {
		return 0, err
	}

	if diff := rh - lh; diff != int(n.balance) || diff < -1 || diff > 1 {
		return 0, fmt.Errorf("%w: id %v balance %d, subtree heights left=%d right=%d",
			ErrInvariantViolation, n.id, n.balance, lh, rh)
	}

	return max(lh, rh) + 1, nil
}
