package avl

import (
	"fmt"
	"hash"

	"github.com/cespare/xxhash"
)

// Fingerprint hashes the tree's shape and contents with xxhash.
//
// The digest covers a pre-order walk that writes (id, value, balance) for
// every node and a marker for every empty child slot, so two trees share a
// fingerprint exactly when they hold the same nodes in the same positions.
// Ids and values are rendered with %v.
// Complexity: O(n).
func (t *Tree[K, V]) Fingerprint() uint64 {
	h := xxhash.New()
	t.digest(h, t.root)

	return h.Sum64()
}

func (t *Tree[K, V]) digest(h hash.Hash64, slot int32) {
	if slot == nilSlot {
		_, _ = h.Write([]byte{0})
		return
	}
	n := &t.nodes[slot]
	_, _ = fmt.Fprintf(h, "%v\x1f%v\x1f%d\x1e", n.id, n.value, n.balance)
	t.digest(h, n.c[Left])
	t.digest(h, n.c[Right])
}
