package avl

import (
	"fmt"
)

// relink promotes pivot.c[dir] into pivot's place and returns its slot.
//
//	     |                 |
//	   pivot             child
//	   /   \    dir=R    /   \
//	  a   child   =>  pivot   c
//	      /   \       /   \
//	    inner  c     a   inner
//
// inner moves to pivot.c[dir], pivot becomes child.c[!dir], and child takes
// pivot's slot under the grandparent, or becomes the head if pivot had none.
// Balances are left untouched.
func (t *Tree[K, V]) relink(pivot int32, dir Direction) int32 {
	opp := dir.Opposite()
	p := &t.nodes[pivot]
	child := p.c[dir]
	if child == nilSlot {
		panic(fmt.Errorf("%w: cannot rotate %v toward empty %s slot", ErrInvariantViolation, p.id, dir))
	}
	c := &t.nodes[child]

	// inner subtree crosses over to the pivot
	inner := c.c[opp]
	p.c[dir] = inner
	if inner != nilSlot {
		t.nodes[inner].parent = pivot
	}

	grand := p.parent
	c.c[opp] = pivot
	p.parent = child

	// reconnect above
	c.parent = grand
	if grand == nilSlot {
		t.root = child
	} else {
		g := &t.nodes[grand]
		if g.c[Left] == pivot {
			g.c[Left] = child
		} else {
			g.c[Right] = child
		}
	}

	return child
}

// rotateSingle handles the straight case: pivot is heavy on dir and so is its
// child on dir. The child is promoted.
func (t *Tree[K, V]) rotateSingle(pivot int32, dir Direction) {
	wasRoot := pivot == t.root
	child := t.relink(pivot, dir)

	t.nodes[pivot].balance = 0
	t.nodes[child].balance = 0

	t.stats.SingleRotations++
	t.notify(SingleRotation, dir, pivot, child, wasRoot)
}

// rotateDouble handles the zig-zag case: pivot is heavy on dir while its child
// leans the other way. The child's inner child (the grandchild) is first lifted
// over the child, then over the pivot.
func (t *Tree[K, V]) rotateDouble(pivot int32, dir Direction) {
	wasRoot := pivot == t.root
	child := t.nodes[pivot].c[dir]
	grand := t.nodes[child].c[dir.Opposite()]
	if grand == nilSlot {
		panic(fmt.Errorf("%w: zig-zag at %v without an inner grandchild", ErrInvariantViolation, t.nodes[pivot].id))
	}
	b := t.nodes[grand].balance

	t.relink(child, dir.Opposite())
	t.relink(pivot, dir)

	s := dir.sign()
	p, c, g := &t.nodes[pivot], &t.nodes[child], &t.nodes[grand]
	p.balance, c.balance, g.balance = 0, 0, 0
	switch b {
	case s:
		// the grandchild's taller dir-side subtree went to the child
		p.balance = -s
	case -s:
		c.balance = s
	}

	t.stats.DoubleRotations++
	t.notify(DoubleRotation, dir, pivot, grand, wasRoot)
}

// notify records a head change and calls the OnRotate hook, if any.
func (t *Tree[K, V]) notify(kind RotationKind, dir Direction, pivot, promoted int32, wasRoot bool) {
	if wasRoot {
		t.stats.RootChanges++
	}
	if t.opts.OnRotate == nil {
		return
	}
	t.opts.OnRotate(RotationEvent[K]{
		Kind:        kind,
		Heavy:       dir,
		Pivot:       t.nodes[pivot].id,
		Promoted:    t.nodes[promoted].id,
		RootChanged: wasRoot,
	})
}
