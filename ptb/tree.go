package ptb

// Tree is a constituency tree node. Terminal nodes carry a Token and
// have no children; on terminals the Label is the part of speech tag.
type Tree struct {
	Label    string
	Children []*Tree

	// Leaf is set on terminal nodes only.
	Leaf *Token
}

// NewLeaf builds a terminal node for a token, labeled with its tag.
func NewLeaf(tok Token) *Tree {
	return &Tree{Label: tok.Tag, Leaf: &tok}
}

// NewNode builds a constituency node.
func NewNode(label string, children ...*Tree) *Tree {
	return &Tree{Label: label, Children: children}
}

// IsLeaf reports whether the node is a terminal.
func (t *Tree) IsLeaf() bool {
	return t.Leaf != nil
}

// Tokens returns the terminal tokens of the tree in order.
func (t *Tree) Tokens() []Token {
	if t.IsLeaf() {
		return []Token{*t.Leaf}
	}

	var tokens []Token
	for _, c := range t.Children {
		tokens = append(tokens, c.Tokens()...)
	}
	return tokens
}

// StripSubcategories applies StripSubcategory to every constituency
// node of the tree, in place. Terminal nodes pass through unchanged.
func (t *Tree) StripSubcategories(retainTMP, retainNPTMP bool) {
	if t.IsLeaf() {
		return
	}

	t.Label = StripSubcategory(t.Label, retainTMP, retainNPTMP)
	for _, c := range t.Children {
		c.StripSubcategories(retainTMP, retainNPTMP)
	}
}

// PruneTraces removes terminals whose word is a non-word token (traces,
// null elements) and any constituent left empty by the removal. It
// returns nil if nothing of the tree survives.
func PruneTraces(t *Tree) *Tree {
	if t.IsLeaf() {
		if IsNonwordToken(t.Leaf.Word) {
			return nil
		}
		return t
	}

	var kept []*Tree
	for _, c := range t.Children {
		if pruned := PruneTraces(c); pruned != nil {
			kept = append(kept, pruned)
		}
	}

	if len(kept) == 0 {
		return nil
	}

	t.Children = kept
	return t
}
