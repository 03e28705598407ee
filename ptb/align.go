package ptb

import (
	"fmt"
	"strings"
)

// Span is a character interval [Start, End) in the text tokens are
// aligned against.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// AlignTokens computes the span of each token within text, walking the
// text left to right. The tokens are searched for by their tweaked
// word; the token offset is added to the detected start so that a
// skip-prefix does not count as part of the token.
//
// A token with an empty tweaked word gets a zero-length span at the
// current position. The spans are returned in token order.
func AlignTokens(text string, tokens []TweakedToken) ([]Span, error) {
	spans := make([]Span, 0, len(tokens))

	pos := 0
	for i, tok := range tokens {
		if tok.TweakedWord == "" {
			spans = append(spans, Span{Start: pos, End: pos})
			continue
		}

		found := strings.Index(text[pos:], tok.TweakedWord)
		if found < 0 {
			return nil, fmt.Errorf("align: token %d (%s) not found after offset %d", i, tok, pos)
		}

		start := pos + found
		end := start + len(tok.TweakedWord)
		spans = append(spans, Span{Start: start + tok.Offset, End: end})
		pos = end
	}

	return spans, nil
}
