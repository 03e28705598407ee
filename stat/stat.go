package stat

import (
	"github.com/discoursekit/disco/stac"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumDialogues int
	NumEdus      int
	NumRelations int

	EdusPerDialogueMean int

	// Distribution of annotated dialogue acts. Units with no act are
	// counted under the empty key.
	ActDis map[string]int

	// Distribution of annotated relation labels
	RelationDis map[string]int
}

func (h *Handler) Get() Stats {
	if h.stats.NumDialogues > 0 {
		h.stats.EdusPerDialogueMean = h.stats.NumEdus / h.stats.NumDialogues
	}
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		ActDis:      map[string]int{},
		RelationDis: map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(d *stac.Dialogue) {
	h.stats.NumDialogues++
	h.stats.NumEdus += len(d.Edus)
	h.stats.NumRelations += len(d.Relations)

	for _, edu := range d.Edus {
		h.stats.ActDis[edu.Act]++
	}
	for _, rel := range d.Relations {
		h.stats.RelationDis[rel.Label]++
	}
}
