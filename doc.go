// Package lvtree is an in-memory toolkit for height-balanced search trees
// whose nodes can be reached both from the head down and directly by id.
//
// What is lvtree?
//
//	A small library with one mutating structure and read-only consumers:
//		• avl       – self-balancing BST with an id index, parent links,
//		              single and double rotations, Validate and Fingerprint
//		• tree      – the read capability (tree.Node) shared by every tree
//		• bfs, dfs  – level-order and depth-first walks with hooks, limits,
//		              filters and predicate Find over any tree.Node
//		• scenario  – YAML insert sequences with expected shapes
//		• cmd/avlplay – replay sequences and scenarios from the shell
//
// Why lvtree?
//
//   - O(1) lookup by id next to O(log n) ordered placement
//   - Arena-backed nodes: rotations reassign integers, no pointer juggling
//   - Rotation hooks and counters to observe what the balancer does
//
// Quick ex.:
//
//	t := avl.FromHead("60", 60)
//	for _, v := range []int{50, 40, 30, 20, 10, 9} {
//	    _ = t.Insert(strconv.Itoa(v), v)
//	}
//	fmt.Println(t.Head().ID()) // 30
//
//	res, _ := bfs.BFS[string, int](t.Head())
//	fmt.Println(res.Order) // [30 10 50 9 20 40 60]
//
// A Tree is not safe for concurrent mutation; traversals only read and may
// run concurrently with each other.
package lvtree
