package sentence

// NodeKind tags the variant of a tree node.
type NodeKind int

const (
	// Leaf is a constituency node without children. It carries a Word.
	Leaf NodeKind = iota
	// Phrase is a constituency node with children. It carries a Label.
	Phrase
	// Direct is a dependency child printed in structural order.
	Direct
	// ChunkChild is a dependency child printed in chunk ordinal order.
	ChunkChild
)

func (k NodeKind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Phrase:
		return "phrase"
	case Direct:
		return "direct"
	case ChunkChild:
		return "chunk"
	}

	return "unknown"
}

// ParseNode is a node of a constituency (phrase structure) tree.
//
// Exactly one child of a Phrase is expected to be marked as Head. A nil entry
// in Children is structural corruption, not an empty subtree.
type ParseNode struct {
	Label    string       `json:"label,omitempty"`
	Head     bool         `json:"head,omitempty"`
	Word     *Word        `json:"word,omitempty"`
	Children []*ParseNode `json:"children,omitempty"`
}

func (n *ParseNode) Kind() NodeKind {
	if len(n.Children) == 0 {
		return Leaf
	}

	return Phrase
}

// Depth returns the number of levels of the tree. Nil children are ignored.
func (n *ParseNode) Depth() int {
	if n == nil {
		return 0
	}

	deepest := 0
	for _, ch := range n.Children {
		if d := ch.Depth(); d > deepest {
			deepest = d
		}
	}

	return deepest + 1
}

// DepNode is a node of a dependency tree.
//
// LinkLabel is the label of the edge to the parent, Label is the node's own
// dependency role. ChunkOrd is only meaningful when Chunk is set: it is the
// position hint assigned by the chunker, not necessarily contiguous.
type DepNode struct {
	Label     string     `json:"label"`
	LinkLabel string     `json:"link"`
	Word      *Word      `json:"word,omitempty"`
	Chunk     bool       `json:"chunk,omitempty"`
	ChunkOrd  int        `json:"chunk_ord,omitempty"`
	Children  []*DepNode `json:"children,omitempty"`
}

func (n *DepNode) Kind() NodeKind {
	if n.Chunk {
		return ChunkChild
	}

	return Direct
}

// Depth returns the number of levels of the tree. Nil children are ignored.
func (n *DepNode) Depth() int {
	if n == nil {
		return 0
	}

	deepest := 0
	for _, ch := range n.Children {
		if d := ch.Depth(); d > deepest {
			deepest = d
		}
	}

	return deepest + 1
}

// Walk calls fn for every non nil node of the tree, parents before children.
func (n *DepNode) Walk(fn func(*DepNode)) {
	if n == nil {
		return
	}

	fn(n)
	for _, ch := range n.Children {
		ch.Walk(fn)
	}
}
