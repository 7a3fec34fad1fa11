package render

import (
	"fmt"
	"strings"

	sent "github.com/revelaction/arbol/sentence"
)

// DepTreeString renders a dependency tree, indented two spaces per depth
// level:
//
//	top/top/(come comer VMIP3S0) [
//	  subj/subj/(Juan juan NP00000)
//	  dobj/dobj/(fruta fruta NCFS000)
//	]
//
// Direct children are printed first, in their original order. Chunk
// children follow, in ascending chunk ordinal order (see chunkOrder).
func (r *Renderer) DepTreeString(tree *sent.DepNode, depth int) string {
	if tree == nil {
		return ""
	}

	var str strings.Builder
	r.depTree(&str, tree, depth)
	return str.String()
}

func (r *Renderer) depTree(str *strings.Builder, n *sent.DepNode, depth int) {
	if n.Word == nil {
		r.report(fmt.Errorf("%w: dependency node %q at depth %d", ErrMissingWord, n.Label, depth))
		return
	}

	indent(str, depth)
	str.WriteString(r.color(n.LinkLabel, Yellow256) + "/" + r.color(n.Label, Yellow256) + "/")
	str.WriteString(r.word(*n.Word))

	if len(n.Children) > 0 {
		str.WriteString(" [\n")

		for i, child := range n.Children {
			if child == nil {
				r.report(fmt.Errorf("%w: child %d of %q at depth %d", ErrNullChild, i, n.Label, depth))
				continue
			}

			if child.Kind() == sent.Direct {
				r.depTree(str, child, depth+1)
			}
		}

		for _, child := range chunkOrder(n.Children) {
			r.depTree(str, child, depth+1)
		}

		indent(str, depth)
		str.WriteString("]")
	}

	str.WriteString("\n")
}

// chunkOrder returns the chunk children in ascending ordinal order.
//
// Starting with last = 0, it repeatedly scans all children for the chunk
// with the smallest ordinal greater than last, and then moves last to that
// ordinal. On equal ordinals the first child in scan order wins and the
// others are never returned, as last has moved past them. Ordinals below 1
// are never returned either.
func chunkOrder(children []*sent.DepNode) []*sent.DepNode {
	var ordered []*sent.DepNode

	last := 0
	for {
		var next *sent.DepNode
		for _, child := range children {
			if child == nil || child.Kind() != sent.ChunkChild {
				continue
			}

			if child.ChunkOrd > last && (next == nil || child.ChunkOrd < next.ChunkOrd) {
				next = child
			}
		}

		if next == nil {
			return ordered
		}

		ordered = append(ordered, next)
		last = next.ChunkOrd
	}
}
