package render

import (
	"fmt"
	"strings"

	sent "github.com/revelaction/arbol/sentence"
)

// ParseTreeString renders a constituency tree, indented two spaces per
// depth level:
//
//	S_[
//	  +(come comer VMIP3S0)
//	]
//
// Head nodes are prefixed with "+". Children keep their original order.
func (r *Renderer) ParseTreeString(tree *sent.ParseNode, depth int) string {
	if tree == nil {
		return ""
	}

	var str strings.Builder
	r.parseTree(&str, tree, depth)
	return str.String()
}

func (r *Renderer) parseTree(str *strings.Builder, n *sent.ParseNode, depth int) {
	if n.Kind() == sent.Leaf {
		if n.Word == nil {
			r.report(fmt.Errorf("%w: constituency leaf at depth %d", ErrMissingWord, depth))
			return
		}

		indent(str, depth)
		str.WriteString(r.headMark(n.Head))
		str.WriteString(r.word(*n.Word))
		str.WriteString("\n")
		return
	}

	// non-terminal
	indent(str, depth)
	str.WriteString(r.headMark(n.Head))
	str.WriteString(r.color(n.Label, Yellow256) + "_[\n")

	for i, child := range n.Children {
		if child == nil {
			r.report(fmt.Errorf("%w: child %d of %q at depth %d", ErrNullChild, i, n.Label, depth))
			continue
		}

		r.parseTree(str, child, depth+1)
	}

	indent(str, depth)
	str.WriteString("]\n")
}
