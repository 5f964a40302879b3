package avl

// Search performs a binary search for value starting at the head and returns
// the first node on the descent whose value equals it. Because equal values are
// placed to the left, an unsuccessful comparison sends the search left when
// value is smaller and right otherwise.
// Complexity: O(log n).
func (t *Tree[K, V]) Search(value V) (Node[K, V], bool) {
	for cur := t.root; cur != nilSlot; {
		n := &t.nodes[cur]
		switch {
		case value == n.value:
			return Node[K, V]{t: t, slot: cur}, true
		case value < n.value:
			cur = n.c[Left]
		default:
			cur = n.c[Right]
		}
	}

	return Node[K, V]{}, false
}

// InOrder calls fn for every node in non-decreasing value order until fn
// returns false. It uses an explicit stack of at most Height() slots.
func (t *Tree[K, V]) InOrder(fn func(Node[K, V]) bool) {
	stack := make([]int32, 0, t.Height())
	cur := t.root
	for cur != nilSlot || len(stack) > 0 {
		for ; cur != nilSlot; cur = t.nodes[cur].c[Left] {
			stack = append(stack, cur)
		}
		cur, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if !fn(Node[K, V]{t: t, slot: cur}) {
			return
		}
		cur = t.nodes[cur].c[Right]
	}
}

// PreOrder calls fn for every node, parent before children and left before
// right, until fn returns false.
func (t *Tree[K, V]) PreOrder(fn func(Node[K, V]) bool) {
	stack := make([]int32, 1, t.Height()+1)
	stack[0] = t.root
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(Node[K, V]{t: t, slot: cur}) {
			return
		}
		n := &t.nodes[cur]
		// push right first so that left is visited first
		if n.c[Right] != nilSlot {
			stack = append(stack, n.c[Right])
		}
		if n.c[Left] != nilSlot {
			stack = append(stack, n.c[Left])
		}
	}
}

// Values returns all values in non-decreasing order.
func (t *Tree[K, V]) Values() []V {
	out := make([]V, 0, t.Len())
	t.InOrder(func(n Node[K, V]) bool {
		out = append(out, n.Value())
		return true
	})

	return out
}

// IDs returns all ids in in-order position.
func (t *Tree[K, V]) IDs() []K {
	out := make([]K, 0, t.Len())
	t.InOrder(func(n Node[K, V]) bool {
		out = append(out, n.ID())
		return true
	})

	return out
}

// Height returns the number of levels: 1 for a singleton tree.
// It follows the heavier side indicated by the balance counters, so it costs
// O(log n) rather than a full traversal.
func (t *Tree[K, V]) Height() int {
	h := 0
	for cur := t.root; cur != nilSlot; h++ {
		n := &t.nodes[cur]
		if n.balance > 0 {
			cur = n.c[Right]
		} else {
			cur = n.c[Left]
		}
	}

	return h
}

// Depth returns the number of parent hops from id to the head (0 for the head).
func (t *Tree[K, V]) Depth(id K) (int, bool) {
	slot, ok := t.index[id]
	if !ok {
		return 0, false
	}
	d := 0
	for p := t.nodes[slot].parent; p != nilSlot; p = t.nodes[p].parent {
		d++
	}

	return d, true
}
