package ptb

import "testing"

func TestBasicCategory(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"", ""},
		{"NP", "NP"},
		{"NP-TMP-1", "NP"},
		{"NP-SBJ", "NP"},
		{"PP=2", "PP"},
		{"S-TPC-1", "S"},
		{"-LRB-", "-LRB-"},
		{"-RRB-", "-RRB-"},
		{"-NONE-", "-NONE-"},
		// a matched leading char with nothing in between does not
		// close the leading token
		{"--PU", "-"},
		{"WHNP-1", "WHNP"},
	}

	for _, c := range cases {
		if got := BasicCategory(c.label); got != c.want {
			t.Errorf("BasicCategory(%q) = %q, want %q", c.label, got, c.want)
		}
	}
}

func TestPostBasicCategoryIndexWholeLabel(t *testing.T) {
	for _, label := range []string{"NP", "-LRB-", "X"} {
		if got := PostBasicCategoryIndex(label); got != len(label) {
			t.Errorf("PostBasicCategoryIndex(%q) = %d, want %d", label, got, len(label))
		}
	}
}

func TestStripSubcategory(t *testing.T) {
	cases := []struct {
		label       string
		retainTMP   bool
		retainNPTMP bool
		want        string
	}{
		{"NP-SBJ", false, false, "NP"},
		{"PP-TMP", false, false, "PP"},
		{"PP-TMP-2", true, false, "PP-TMP"},
		{"NP-TMP-SBJ", false, true, "NP-TMP"},
		{"NP-TMP=3", true, true, "NP-TMP"},
		{"S-TPC-1", true, false, "S"},
		{"-LRB-", true, true, "-LRB-"},
	}

	for _, c := range cases {
		got := StripSubcategory(c.label, c.retainTMP, c.retainNPTMP)
		if got != c.want {
			t.Errorf("StripSubcategory(%q, %t, %t) = %q, want %q",
				c.label, c.retainTMP, c.retainNPTMP, got, c.want)
		}
	}
}
