// Package stac models the STAC annotated dialogue corpus: dialogues
// made of elementary discourse units (EDUs) carrying dialogue acts,
// linked by discourse relations.
package stac

// RootID is the id of the synthetic root unit that every dialogue is
// given for attachment purposes. It is not part of the annotated EDUs.
const RootID = "ROOT"

// EDU is an elementary discourse unit: a minimal span of text carrying
// one discourse act.
type EDU struct {
	ID      string `json:"id"`
	Speaker string `json:"speaker"`

	// The surface text of the unit
	Text string `json:"text"`

	// Act is the annotated dialogue act. Empty when the unit was not
	// (or not yet) annotated.
	Act string `json:"act,omitempty"`

	// Character span of the unit in the dialogue text
	Start int `json:"start"`
	End   int `json:"end"`
}

// Relation is an annotated discourse relation between two units.
type Relation struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// Pair identifies a source/target unit pairing, related or not.
type Pair struct {
	Source string
	Target string
}

// Dialogue is one document of the corpus: the EDUs of a dialogue in
// textual order plus the relation annotations between them.
type Dialogue struct {
	Id int `json:"-"`

	// Name of the dialogue, eg. "pilot01_07"
	Name string `json:"name"`

	Edus      []EDU      `json:"edus"`
	Relations []Relation `json:"relations,omitempty"`

	relmap map[Pair]string
}

// Library is a collection of Dialogue
type Library []Dialogue

// Names returns a list of all dialogue names in the library
func (l Library) Names() []string {
	var names []string
	for _, d := range l {
		names = append(names, d.Name)
	}
	return names
}

// RelationLabel returns the annotated relation label for a pair and
// whether one is recorded. Pairs sourced at the synthetic root are
// labeled RootID when their target has no other incoming relation.
func (d *Dialogue) RelationLabel(p Pair) (string, bool) {
	if d.relmap == nil {
		d.buildRelmap()
	}

	label, ok := d.relmap[p]
	return label, ok
}

func (d *Dialogue) buildRelmap() {
	d.relmap = make(map[Pair]string, len(d.Relations)+len(d.Edus))

	attached := make(map[string]bool)
	for _, r := range d.Relations {
		d.relmap[Pair{Source: r.Source, Target: r.Target}] = r.Label
		attached[r.Target] = true
	}

	// units with no incoming relation hang off the synthetic root
	for _, e := range d.Edus {
		if !attached[e.ID] {
			d.relmap[Pair{Source: RootID, Target: e.ID}] = RootID
		}
	}
}

// EDU returns the unit with the given id.
func (d *Dialogue) EDU(id string) (EDU, bool) {
	for _, e := range d.Edus {
		if e.ID == id {
			return e, true
		}
	}
	return EDU{}, false
}

// EDUPairs enumerates the instance pairs of the dialogue: one pair per
// unit sourced at the synthetic root, plus every ordered pair of units
// no more than window positions apart. A negative window disables the
// distance limit.
//
// The order is deterministic: root pairs for each target in textual
// order, then (source, target) pairs grouped by source.
func (d *Dialogue) EDUPairs(window int) []Pair {
	var pairs []Pair

	for _, e := range d.Edus {
		pairs = append(pairs, Pair{Source: RootID, Target: e.ID})
	}

	for i, src := range d.Edus {
		for j, tgt := range d.Edus {
			if i == j {
				continue
			}
			if window >= 0 && abs(j-i) > window {
				continue
			}
			pairs = append(pairs, Pair{Source: src.ID, Target: tgt.ID})
		}
	}

	return pairs
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
