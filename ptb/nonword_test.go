package ptb

import "testing"

func TestIsNonwordToken(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"*T*-1", true},
		{"*T*-42", true},
		{"*ICH*-2", true},
		{"*EXP*-1", true},
		{"*RNR*-3", true},
		{"*PPA*-1", true},
		{"*-1", true},
		{"0", true},
		{"*", true},
		{"*U*", true},
		{"*?*", true},
		{"*NOT*", true},

		{"dog", false},
		{"*starred*", false},
		{"T*-1", false},
		{"00", false},
		{"*T*-1x", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsNonwordToken(c.text); got != c.want {
			t.Errorf("IsNonwordToken(%q) = %t, want %t", c.text, got, c.want)
		}
	}
}

func TestTranslateWord(t *testing.T) {
	if got := TranslateWord("-LRB-"); got != "(" {
		t.Errorf("TranslateWord(-LRB-) = %q, want (", got)
	}
	if got := TranslateWord("``"); got != "\"" {
		t.Errorf("TranslateWord(``) = %q, want \"", got)
	}
	if got := TranslateWord("dog"); got != "dog" {
		t.Errorf("TranslateWord(dog) = %q, want dog", got)
	}
}
