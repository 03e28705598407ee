package learn

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/discoursekit/disco/stac"
)

// Vocabulary maps feature names to column indices. It grows as rows
// are produced and is complete only once the row sequence has been
// fully consumed.
type Vocabulary struct {
	index map[string]int
	names []string
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{index: map[string]int{}}
}

// ID returns the column of the named feature, allocating the next free
// column on first sight.
func (v *Vocabulary) ID(name string) int {
	if id, ok := v.index[name]; ok {
		return id
	}

	id := len(v.names)
	v.index[name] = id
	v.names = append(v.names, name)
	return id
}

// Len returns the number of known features.
func (v *Vocabulary) Len() int {
	return len(v.names)
}

// Names returns the feature names ordered by column.
func (v *Vocabulary) Names() []string {
	return v.names
}

// Feature is one cell of a sparse row.
type Feature struct {
	Index int
	Value float64
}

// SparseRow is one instance's features, ordered by column index.
type SparseRow []Feature

func newRow(counts map[int]float64) SparseRow {
	row := make(SparseRow, 0, len(counts))
	for idx, val := range counts {
		row = append(row, Feature{Index: idx, Value: val})
	}
	sort.Slice(row, func(i, j int) bool { return row[i].Index < row[j].Index })
	return row
}

// EDUFeatures extracts sparse feature rows for single units or unit
// pairs. The instance enumeration must match the one handed to the
// label vectorizer so that rows and labels stay positionally aligned.
type EDUFeatures struct {
	Vocab *Vocabulary
}

func NewEDUFeatures() *EDUFeatures {
	return &EDUFeatures{Vocab: NewVocabulary()}
}

// TransformSingles lazily produces one row per unit per dialogue:
// lowercased token unigrams plus a length feature.
func (x *EDUFeatures) TransformSingles(dialogues []*stac.Dialogue) iter.Seq[SparseRow] {
	return func(yield func(SparseRow) bool) {
		for _, d := range dialogues {
			for _, edu := range d.Edus {
				counts := map[int]float64{}
				x.eduFeatures(counts, "", edu)
				if !yield(newRow(counts)) {
					return
				}
			}
		}
	}
}

// TransformPairs lazily produces one row per pair enumerated with the
// given window: source and target unigrams, a same-speaker flag and
// the pair distance.
func (x *EDUFeatures) TransformPairs(dialogues []*stac.Dialogue, window int) iter.Seq[SparseRow] {
	return func(yield func(SparseRow) bool) {
		for _, d := range dialogues {
			position := map[string]int{}
			for i, e := range d.Edus {
				position[e.ID] = i
			}

			for _, pair := range d.EDUPairs(window) {
				counts := map[int]float64{}

				src, hasSrc := d.EDU(pair.Source)
				tgt, _ := d.EDU(pair.Target)

				if !hasSrc {
					// synthetic root has no features of its own
					counts[x.Vocab.ID("src_root")] = 1
				} else {
					x.eduFeatures(counts, "src_", src)
					if src.Speaker == tgt.Speaker {
						counts[x.Vocab.ID("same_speaker")] = 1
					}
					dist := position[pair.Target] - position[pair.Source]
					counts[x.Vocab.ID(fmt.Sprintf("dist=%d", dist))] = 1
				}
				x.eduFeatures(counts, "tgt_", tgt)

				if !yield(newRow(counts)) {
					return
				}
			}
		}
	}
}

func (x *EDUFeatures) eduFeatures(counts map[int]float64, prefix string, edu stac.EDU) {
	for _, word := range strings.Fields(edu.Text) {
		name := prefix + "tok=" + strings.ToLower(word)
		counts[x.Vocab.ID(name)]++
	}
	counts[x.Vocab.ID(prefix+"num_tokens")] = float64(len(strings.Fields(edu.Text)))
}
