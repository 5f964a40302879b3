package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvtree/avl"
	"github.com/katalvlaran/lvtree/bfs"
	"github.com/katalvlaran/lvtree/dfs"
)

type renderer func(w io.Writer, t *avl.Tree[string, int]) error

var layouts = map[string]renderer{
	"outline": renderOutline,
	"levels":  renderLevels,
}

// renderOutline prints one node per line in pre-order, indented by depth:
//
//	30 =30 [+0]
//	  L 10 =10 [+0]
//	  R 50 =50 [+0]
func renderOutline(w io.Writer, t *avl.Tree[string, int]) error {
	res, err := dfs.DFS[string, int](t.Head())
	if err != nil {
		return err
	}
	for _, id := range res.Preorder {
		n, _ := t.Get(id)
		fmt.Fprintf(w, "%s%s%s =%d [%+d]\n",
			strings.Repeat("  ", res.Depth[id]), side(n), id, n.Value(), n.Balance())
	}

	return nil
}

// renderLevels prints one line per depth, nodes left to right.
func renderLevels(w io.Writer, t *avl.Tree[string, int]) error {
	res, err := bfs.BFS[string, int](t.Head())
	if err != nil {
		return err
	}
	depth := -1
	for _, id := range res.Order {
		if d := res.Depth[id]; d != depth {
			if depth >= 0 {
				fmt.Fprintln(w)
			}
			depth = d
			fmt.Fprintf(w, "%d:", d)
		}
		fmt.Fprintf(w, " %s", id)
	}
	fmt.Fprintln(w)

	return nil
}

// side labels n with the slot it occupies under its parent.
func side(n avl.Node[string, int]) string {
	up := n.Up()
	switch {
	case up.IsNil():
		return ""
	case up.Left() == n:
		return "L "
	default:
		return "R "
	}
}

func summarize(w io.Writer, t *avl.Tree[string, int]) {
	st := t.Stats()
	fmt.Fprintf(w, "nodes %d, height %d, fingerprint %016x\n", t.Len(), t.Height(), t.Fingerprint())
	fmt.Fprintf(w, "rotations: %d single, %d double, %d head changes\n",
		st.SingleRotations, st.DoubleRotations, st.RootChanges)
}
