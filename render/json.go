package render

import (
	"encoding/json"
	"io"

	"github.com/discoursekit/disco/stac"
)

// JSONRenderer writes dialogues as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the dialogues as a JSON array.
func (r *JSONRenderer) Render(dialogues []*stac.Dialogue) {
	json.NewEncoder(r.W).Encode(dialogues)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
