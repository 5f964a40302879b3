package tree

// Node is the read capability of a single tree node.
//
// K identifies a node; V is its payload. Children returns only the present
// children and never nil entries. Parent reports false for a root.
type Node[K comparable, V any] interface {
	ID() K
	Value() V
	Children() []Node[K, V]
	Parent() (Node[K, V], bool)
}

// Root climbs parent links from n until it reaches a node without a parent.
// Complexity: O(depth of n).
func Root[K comparable, V any](n Node[K, V]) Node[K, V] {
	for {
		p, ok := n.Parent()
		if !ok {
			return n
		}
		n = p
	}
}

// Path returns the nodes from the root down to n (both inclusive).
// Complexity: O(depth of n).
func Path[K comparable, V any](n Node[K, V]) []Node[K, V] {
	path := []Node[K, V]{n}
	for cur := n; ; {
		p, ok := cur.Parent()
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get root → n
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nilReporter is implemented by node handles whose zero value stands for
// "no node" (avl.Node among them).
type nilReporter interface {
	IsNil() bool
}

// IsNil reports whether n is a nil interface or a handle that reports itself
// as absent.
func IsNil[K comparable, V any](n Node[K, V]) bool {
	if n == nil {
		return true
	}
	if r, ok := n.(nilReporter); ok {
		return r.IsNil()
	}

	return false
}
