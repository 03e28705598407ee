// Package learn turns annotated dialogues into the integer label
// sequences and sparse feature rows consumed by statistical learners.
package learn

import (
	"iter"
	"sort"

	"github.com/discoursekit/disco/stac"
)

// Sentinel label names. They are part of the output format: dumped
// label comments list them under these names.
const (
	UnknownLabel   = "__UNK__"
	RootLabel      = "ROOT"
	UnrelatedLabel = "UNRELATED"
)

// LabelIndex maps label names to the integer classes used in dumped
// files. Built once at vectorizer construction, read-only afterwards.
type LabelIndex map[string]int

// Names returns the label names ordered by index.
func (li LabelIndex) Names() []string {
	names := make([]string, 0, len(li))
	for name := range li {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return li[names[i]] < li[names[j]]
	})
	return names
}

// DialogueActVectorizer maps the dialogue act of each enumerated unit
// to its integer class. Units with no act, or an act outside the label
// set, get the unknown class.
type DialogueActVectorizer struct {
	instances func(*stac.Dialogue) []stac.EDU

	// Labels is the index map: UnknownLabel at 0, the label set from 1.
	Labels LabelIndex
}

// NewDialogueActVectorizer builds the label index over the given label
// set, in order, starting at 1.
func NewDialogueActVectorizer(instances func(*stac.Dialogue) []stac.EDU, labels []string) *DialogueActVectorizer {
	idx := LabelIndex{UnknownLabel: 0}
	for i, l := range labels {
		idx[l] = i + 1
	}

	return &DialogueActVectorizer{instances: instances, Labels: idx}
}

// Transform returns a lazy, single-use sequence with one integer per
// unit enumerated from the dialogues, positionally aligned with the
// corresponding feature rows.
func (v *DialogueActVectorizer) Transform(dialogues []*stac.Dialogue) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, d := range dialogues {
			for _, edu := range v.instances(d) {
				idx, ok := v.Labels[edu.Act]
				if !ok {
					idx = v.Labels[UnknownLabel]
				}
				if !yield(idx) {
					return
				}
			}
		}
	}
}

// LabelVectorizer maps the relation label of each enumerated unit pair
// to its integer class. Unpaired instances get the unrelated class;
// pairs sourced at the synthetic root get the root class.
type LabelVectorizer struct {
	instances func(*stac.Dialogue) []stac.Pair

	// Labels is the index map: UnknownLabel at 0, RootLabel at 1,
	// UnrelatedLabel at 2, the label set from 3.
	Labels LabelIndex
}

// NewLabelVectorizer builds the label index over the given label set,
// in order, starting after the three sentinel classes.
func NewLabelVectorizer(instances func(*stac.Dialogue) []stac.Pair, labels []string) *LabelVectorizer {
	idx := LabelIndex{
		UnknownLabel:   0,
		RootLabel:      1,
		UnrelatedLabel: 2,
	}
	for i, l := range labels {
		idx[l] = i + 3
	}

	return &LabelVectorizer{instances: instances, Labels: idx}
}

// Transform returns a lazy, single-use sequence with one integer per
// pair enumerated from the dialogues, positionally aligned with the
// corresponding feature rows.
func (v *LabelVectorizer) Transform(dialogues []*stac.Dialogue) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, d := range dialogues {
			for _, pair := range v.instances(d) {
				label, ok := d.RelationLabel(pair)
				if !ok {
					label = UnrelatedLabel
				}

				idx, ok := v.Labels[label]
				if !ok {
					idx = v.Labels[UnknownLabel]
				}
				if !yield(idx) {
					return
				}
			}
		}
	}
}
