package ptb

import "regexp"

// PTBToText maps PTB-isms to their likely original text. Straight
// substitutions, useful as a tweak source when aligning annotations
// against the underlying document.
var PTBToText = map[string]string{
	"``":    "\"",
	"''":    "\"",
	"-LRB-": "(",
	"-RRB-": ")",
	"-LSB-": "[",
	"-RSB-": "]",
	"-LCB-": "{",
	"-RCB-": "}",
}

// TranslateWord returns the likely original text for a PTB token word,
// or the word unchanged if it is not a known PTB-ism.
func TranslateWord(word string) string {
	if text, ok := PTBToText[word]; ok {
		return text
	}
	return word
}

// nonwordRe matches placeholder tokens with no surface text: numbered
// movement traces, null elements and the special *U*/*?*/*NOT* markers.
var nonwordRe = regexp.MustCompile(`^(` +
	`(\*((T|ICH|EXP|RNR|PPA)\*)?-\d*)` +
	`|0|\*` +
	`|(\*(U|\?|NOT)\*)` +
	`)$`)

// IsNonwordToken reports whether the text corresponds to some kind of
// non-textual token, for example `*T*-1` for a trace. These seem to
// only appear on tokens tagged -NONE-.
func IsNonwordToken(text string) bool {
	return nonwordRe.MatchString(text)
}
