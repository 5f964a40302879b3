// Package avl provides a self-balancing (AVL) binary search tree with an
// id index, parent back-links and a read capability compatible with tree.Node.
//
// What
//
//   - Every node carries an id (identity, unique, never compared) and a value
//     (ordered placement key, duplicates allowed).
//   - Placement: value <= node.value goes left, value > node.value goes right.
//   - Balance: each node keeps height(right) - height(left) in {-1, 0, 1}.
//     After linking a new leaf, the balance maintainer climbs toward the head,
//     stops as soon as a subtree height stops growing, and performs at most one
//     single or double rotation at the lowest unbalanced ancestor.
//   - Index: id → node in O(1) via Get, without walking the tree.
//
// Layout
//
//	All nodes live in one arena slice addressed by int32 slots. Children and
//	parents are slots; slot 0 is "no node". A rotation is therefore a handful of
//	integer assignments, and the index maps id → slot. Nothing is ever freed:
//	deletion is not supported.
//
// Rotations
//
//	single (pivot heavy on R, child leaning R):     double (pivot heavy on R, child leaning L):
//
//	    P                 C                             P                   G
//	     \               / \                             \                 / \
//	      C      =>     P   x                             C       =>      P   C
//	       \                                             /
//	        x                                           G
//
//	The mirrored cases are handled by the same code with the directions swapped.
//
// Complexity (n = Len())
//
//   - FromHead:  O(1)
//   - Insert:    O(log n)
//   - Get, Has:  O(1)
//   - Search:    O(log n)
//   - Height:    O(log n)
//   - Validate, Fingerprint, InOrder, PreOrder: O(n)
//
// Usage
//
//	t := avl.FromHead("60", 60)
//	for _, v := range []int{50, 40, 30} {
//	    if err := t.Insert(strconv.Itoa(v), v); err != nil {
//	        // only ErrDuplicateID is possible
//	    }
//	}
//	head := t.Head()            // "50"
//	n, ok := t.Get("30")        // O(1)
//
// Options
//
//   - WithCapacity(n):   preallocate the arena and the index for n nodes.
//   - WithOnRotate(fn):  observe each rotation (kind, pivot, promoted node, head change).
//
// Errors
//
//   - ErrDuplicateID         Insert with an id already present; the tree is unchanged.
//   - ErrInvariantViolation  returned by Validate; also the panic value when the
//     maintainer meets an impossible structure (a bug, never a user error).
//
// Concurrency
//
//	A Tree is not safe for concurrent use. Guard Insert with an exclusive lock
//	if several goroutines share a tree.
package avl
