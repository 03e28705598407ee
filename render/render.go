package render

import (
	"fmt"
	"io"

	"github.com/discoursekit/disco/ptb"
	"github.com/discoursekit/disco/stac"
)

var (
	Yellow = "\033[0;33m"
	Teal   = "\033[1;36m"
	Gray   = "\033[0;37m"
	Off    = "\033[0m"
)

// TextRenderer writes dialogues for terminal reading: one line per
// EDU, speaker in front, dialogue act appended when annotated.
type TextRenderer struct {
	HasColor bool

	// ShowActs controls whether annotated dialogue acts are appended
	// to each unit line.
	ShowActs bool

	W io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{ShowActs: true, W: w}
}

// Render prints every dialogue, separated by a header line.
func (r *TextRenderer) Render(dialogues []*stac.Dialogue) {
	for _, d := range dialogues {
		r.Dialogue(d)
	}
}

func (r *TextRenderer) Dialogue(d *stac.Dialogue) {
	fmt.Fprintf(r.W, "%s (%d units, %d relations)\n", d.Name, len(d.Edus), len(d.Relations))
	for _, edu := range d.Edus {
		r.EDU(edu)
	}
}

func (r *TextRenderer) EDU(e stac.EDU) {
	speaker := e.Speaker
	if r.HasColor {
		speaker = Teal + speaker + Off
	}

	act := ""
	if r.ShowActs && e.Act != "" {
		act = " [" + e.Act + "]"
		if r.HasColor {
			act = " [" + Yellow + e.Act + Off + "]"
		}
	}

	fmt.Fprintf(r.W, "  %s: %s%s\n", speaker, e.Text, act)
}

// Category prints a treebank label next to its normalized form.
func (r *TextRenderer) Category(label string, retainTMP, retainNPTMP bool) {
	stripped := ptb.StripSubcategory(label, retainTMP, retainNPTMP)

	arrow := "=>"
	if r.HasColor {
		stripped = Yellow + stripped + Off
		arrow = Gray + arrow + Off
	}

	fmt.Fprintf(r.W, "%s %s %s\n", label, arrow, stripped)
}

// Renderer is anything able to present a set of dialogues.
type Renderer interface {
	Render(dialogues []*stac.Dialogue)
}
