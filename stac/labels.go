package stac

// The STAC annotation scheme. Order matters: the vectorizers assign
// indices by position, so these lists are part of the output format.

// DialogueActs are the dialogue act labels of the units stage.
var DialogueActs = []string{
	"Offer",
	"Counteroffer",
	"Accept",
	"Refusal",
	"Other",
}

// SubordinatingRelations are the asymmetric discourse relations.
var SubordinatingRelations = []string{
	"Explanation",
	"Background",
	"Elaboration",
	"Correction",
	"Q-Elab",
	"Comment",
	"Question-answer_pair",
	"Clarification_question",
	"Acknowledgement",
}

// CoordinatingRelations are the symmetric discourse relations.
var CoordinatingRelations = []string{
	"Result",
	"Narration",
	"Continuation",
	"Contrast",
	"Parallel",
	"Conditional",
	"Alternation",
}

// RelationLabels returns the full relation label set, subordinating
// relations first.
func RelationLabels() []string {
	labels := make([]string, 0, len(SubordinatingRelations)+len(CoordinatingRelations))
	labels = append(labels, SubordinatingRelations...)
	labels = append(labels, CoordinatingRelations...)
	return labels
}
