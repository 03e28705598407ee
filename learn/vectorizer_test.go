package learn

import (
	"testing"

	"github.com/discoursekit/disco/stac"
)

func singles(d *stac.Dialogue) []stac.EDU {
	return d.Edus
}

func pairs(window int) func(*stac.Dialogue) []stac.Pair {
	return func(d *stac.Dialogue) []stac.Pair {
		return d.EDUPairs(window)
	}
}

func collect(seq func(func(int) bool)) []int {
	var out []int
	seq(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

func TestDialogueActVectorizerIndices(t *testing.T) {
	v := NewDialogueActVectorizer(singles, stac.DialogueActs)

	if v.Labels[UnknownLabel] != 0 {
		t.Errorf("unknown index = %d, want 0", v.Labels[UnknownLabel])
	}
	if v.Labels["Offer"] != 1 {
		t.Errorf("Offer index = %d, want 1", v.Labels["Offer"])
	}
	if v.Labels["Other"] != 5 {
		t.Errorf("Other index = %d, want 5", v.Labels["Other"])
	}
}

func TestDialogueActVectorizerTransform(t *testing.T) {
	v := NewDialogueActVectorizer(singles, stac.DialogueActs)

	d := &stac.Dialogue{Edus: []stac.EDU{
		{ID: "e1", Act: "Offer"},
		{ID: "e2"}, // act unset
		{ID: "e3", Act: "Bogus"},
	}}

	got := collect(v.Transform([]*stac.Dialogue{d}))
	want := []int{1, 0, 0}

	if len(got) != len(want) {
		t.Fatalf("got %d labels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLabelVectorizerSentinels(t *testing.T) {
	v := NewLabelVectorizer(pairs(-1), stac.RelationLabels())

	if v.Labels[UnknownLabel] != 0 || v.Labels[RootLabel] != 1 || v.Labels[UnrelatedLabel] != 2 {
		t.Errorf("sentinel indices = %d %d %d, want 0 1 2",
			v.Labels[UnknownLabel], v.Labels[RootLabel], v.Labels[UnrelatedLabel])
	}
	if v.Labels["Explanation"] != 3 {
		t.Errorf("Explanation index = %d, want 3", v.Labels["Explanation"])
	}
}

func TestLabelVectorizerTransform(t *testing.T) {
	v := NewLabelVectorizer(pairs(-1), stac.RelationLabels())

	d := &stac.Dialogue{
		Edus: []stac.EDU{
			{ID: "e1"},
			{ID: "e2"},
		},
		Relations: []stac.Relation{
			{Source: "e1", Target: "e2", Label: "Elaboration"},
		},
	}

	got := collect(v.Transform([]*stac.Dialogue{d}))
	// pairs: (ROOT,e1) (ROOT,e2) (e1,e2) (e2,e1)
	want := []int{
		v.Labels[RootLabel],
		v.Labels[UnrelatedLabel], // e2 is attached to e1, not the root
		v.Labels["Elaboration"],
		v.Labels[UnrelatedLabel],
	}

	if len(got) != len(want) {
		t.Fatalf("got %d labels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLabelIndexNames(t *testing.T) {
	v := NewLabelVectorizer(pairs(-1), []string{"A", "B"})
	names := v.Labels.Names()

	want := []string{UnknownLabel, RootLabel, UnrelatedLabel, "A", "B"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, names[i], want[i])
		}
	}
}
