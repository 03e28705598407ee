package stat

import (
	"testing"

	"github.com/discoursekit/disco/stac"
)

func TestAggregate(t *testing.T) {
	h := NewHandler()

	h.Aggregate(&stac.Dialogue{
		Edus: []stac.EDU{
			{ID: "e1", Act: "Offer"},
			{ID: "e2", Act: "Refusal"},
			{ID: "e3"},
		},
		Relations: []stac.Relation{
			{Source: "e1", Target: "e2", Label: "Question-answer_pair"},
		},
	})
	h.Aggregate(&stac.Dialogue{
		Edus: []stac.EDU{{ID: "e1", Act: "Offer"}},
	})

	stats := h.Get()

	if stats.NumDialogues != 2 {
		t.Errorf("NumDialogues = %d, want 2", stats.NumDialogues)
	}
	if stats.NumEdus != 4 {
		t.Errorf("NumEdus = %d, want 4", stats.NumEdus)
	}
	if stats.NumRelations != 1 {
		t.Errorf("NumRelations = %d, want 1", stats.NumRelations)
	}
	if stats.EdusPerDialogueMean != 2 {
		t.Errorf("EdusPerDialogueMean = %d, want 2", stats.EdusPerDialogueMean)
	}
	if stats.ActDis["Offer"] != 2 {
		t.Errorf("ActDis[Offer] = %d, want 2", stats.ActDis["Offer"])
	}
	if stats.ActDis[""] != 1 {
		t.Errorf("ActDis[unannotated] = %d, want 1", stats.ActDis[""])
	}
	if stats.RelationDis["Question-answer_pair"] != 1 {
		t.Errorf("RelationDis = %+v", stats.RelationDis)
	}
}
