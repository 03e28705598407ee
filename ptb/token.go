package ptb

import "fmt"

// Token is a word with its part of speech tag, as read from a Penn
// Treebank style annotation. Immutable once created.
type Token struct {
	Word string
	Tag  string
}

func (t Token) String() string {
	return t.Word + "/" + t.Tag
}

// TweakedToken is a Token plus a "tweaked word" (what the token should
// be treated as when aligning against source text) and an offset.
//
// PTB annotations sometimes describe text that is almost but not quite
// the text we want to align against. The source text may end a sentence
// in an abbreviation ("He moved to the U.S.") where the treebank
// annotates an extra full stop as an end-of-sentence marker. Tweaked
// tokens allow for manual substitutions when computing token spans:
//
//   - delete a token by giving it an empty tweaked word (it gets a
//     zero-length span)
//   - skip a stretch of text by supplying a prefix; the prefix expands
//     the tweaked word and its length is recorded as Offset, which the
//     aligner uses to push the detected span start past the skipped part
//   - or replace the token text outright
//
// Tweaked tokens only exist to obtain spans; they are discarded after
// alignment.
type TweakedToken struct {
	Token
	TweakedWord string
	Offset      int
}

// NewTweakedToken builds a TweakedToken. An empty tweak means "use the
// word as is". A non-empty prefix is prepended to the tweaked word and
// its length recorded as the offset.
//
// Deleting a token (zero-length span) requires an explicit empty tweak,
// so tweak is a pointer: nil defaults to word, pointer-to-empty deletes.
func NewTweakedToken(word, tag string, tweak *string, prefix string) TweakedToken {
	tweaked := word
	if tweak != nil {
		tweaked = *tweak
	}

	offset := 0
	if prefix != "" {
		tweaked = prefix + tweaked
		offset = len(prefix)
	}

	return TweakedToken{
		Token:       Token{Word: word, Tag: tag},
		TweakedWord: tweaked,
		Offset:      offset,
	}
}

func (t TweakedToken) String() string {
	res := t.Word
	if t.TweakedWord != t.Word {
		res += fmt.Sprintf(" [%s]", t.TweakedWord)
	}
	res += "/" + t.Tag
	if t.Offset != 0 {
		res += fmt.Sprintf(" (%d)", t.Offset)
	}
	return res
}
