package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/discoursekit/disco/stac"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	r.Render(nil)

	var results []*stac.Dialogue
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestJSONRendererRenderOneDialogue(t *testing.T) {
	d := &stac.Dialogue{
		Name: "pilot01_02",
		Edus: []stac.EDU{
			{ID: "e1", Speaker: "Tomato", Text: "got wood?", Act: "Offer"},
		},
		Relations: []stac.Relation{
			{Source: "e1", Target: "e2", Label: "Question-answer_pair"},
		},
	}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	r.Render([]*stac.Dialogue{d})

	var results []stac.Dialogue
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Name != "pilot01_02" {
		t.Errorf("expected name 'pilot01_02', got %q", results[0].Name)
	}

	if len(results[0].Edus) != 1 || results[0].Edus[0].Act != "Offer" {
		t.Errorf("edus did not round trip: %+v", results[0].Edus)
	}
}
