package ptb

import "strings"

// Label annotation introducing characters, after the Stanford
// TreebankLanguagePack: '-' carries function tags and identity or
// reference indices, '=' carries gap co-indexing.
const annotationChars = "-="

// PostBasicCategoryIndex returns the index of the first char after the
// basic category of the label.
//
// The returned index never points at the first char of the label; if
// the label starts with an annotation char, a later matching char is
// also skipped iff there is something in between, e.g.
// (-LRB- => -LRB-) but (--PU => -).
func PostBasicCategoryIndex(label string) int {
	var firstChar byte
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !strings.ContainsRune(annotationChars, rune(c)) {
			continue
		}

		switch {
		case i == 0:
			firstChar = c
		case firstChar != 0 && i > 1 && c == firstChar:
			firstChar = 0
		default:
			return i
		}
	}

	return len(label)
}

// BasicCategory returns the basic syntactic category of a label, by
// truncating whatever comes after a non-word-initial occurrence of an
// annotation introducing character.
func BasicCategory(label string) string {
	if label == "" {
		return label
	}
	return label[:PostBasicCategoryIndex(label)]
}

// StripSubcategory normalizes a constituency node label down to its
// basic category, subject to two retention rules borrowed from the
// standard English treebank parser parameters:
//
//   - retainNPTMP keeps noun-phrase temporal modifiers as exactly
//     "NP-TMP"
//   - retainTMP keeps the temporal modifier function tag on the basic
//     category, e.g. "PP-TMP-2" => "PP-TMP"
func StripSubcategory(label string, retainTMP, retainNPTMP bool) string {
	switch {
	case retainNPTMP && strings.HasPrefix(label, "NP-TMP"):
		return "NP-TMP"
	case retainTMP && strings.Contains(label, "-TMP"):
		return BasicCategory(label) + "-TMP"
	default:
		return BasicCategory(label)
	}
}
