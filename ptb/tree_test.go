package ptb

import "testing"

func TestStripSubcategoriesTree(t *testing.T) {
	tree := NewNode("S-TPC-1",
		NewNode("NP-SBJ", NewLeaf(Token{Word: "dogs", Tag: "NNS"})),
		NewNode("VP", NewLeaf(Token{Word: "bark", Tag: "VBP"})),
	)

	tree.StripSubcategories(false, false)

	if tree.Label != "S" {
		t.Errorf("root label = %q, want S", tree.Label)
	}
	if tree.Children[0].Label != "NP" {
		t.Errorf("subject label = %q, want NP", tree.Children[0].Label)
	}
	// terminals keep their tag label
	if leaf := tree.Children[0].Children[0]; leaf.Label != "NNS" {
		t.Errorf("leaf label = %q, want NNS", leaf.Label)
	}
}

func TestPruneTraces(t *testing.T) {
	tree := NewNode("S",
		NewNode("NP-SBJ-1", NewLeaf(Token{Word: "John", Tag: "NNP"})),
		NewNode("VP",
			NewLeaf(Token{Word: "left", Tag: "VBD"}),
			NewNode("NP", NewLeaf(Token{Word: "*T*-1", Tag: "-NONE-"})),
		),
	)

	pruned := PruneTraces(tree)
	if pruned == nil {
		t.Fatal("whole tree pruned away")
	}

	tokens := pruned.Tokens()
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens after pruning, want 2", len(tokens))
	}
	for _, tok := range tokens {
		if IsNonwordToken(tok.Word) {
			t.Errorf("trace token %q survived pruning", tok.Word)
		}
	}
}

func TestPruneTracesAllGone(t *testing.T) {
	tree := NewNode("NP", NewLeaf(Token{Word: "*", Tag: "-NONE-"}))
	if PruneTraces(tree) != nil {
		t.Error("expected nil for a tree of traces only")
	}
}
