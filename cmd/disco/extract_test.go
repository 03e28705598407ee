package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestExtractRejectsConflictingModes(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newApp(UI{Out: &out, Err: &errOut})

	err := app.Run([]string{"disco", "extract", "--single", "--parsing", "corpus", "out"})
	if err == nil {
		t.Fatal("expected error for --single with --parsing")
	}
	if !strings.Contains(err.Error(), "--parsing") {
		t.Errorf("error %q does not name the conflicting flags", err)
	}
}

func TestLabelCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newApp(UI{Out: &out, Err: &errOut})

	err := app.Run([]string{"disco", "label", "--no-color", "NP-TMP-1", "-LRB-"})
	if err != nil {
		t.Fatalf("label failed: %v", err)
	}

	if !strings.Contains(out.String(), "NP-TMP-1 => NP") {
		t.Errorf("missing NP line in %q", out.String())
	}
	if !strings.Contains(out.String(), "-LRB- => -LRB-") {
		t.Errorf("missing -LRB- line in %q", out.String())
	}
}

func TestNonwordCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newApp(UI{Out: &out, Err: &errOut})

	err := app.Run([]string{"disco", "nonword", "*T*-1", "dog"})
	if err != nil {
		t.Fatalf("nonword failed: %v", err)
	}

	if !strings.Contains(out.String(), "*T*-1 => true") {
		t.Errorf("missing trace line in %q", out.String())
	}
	if !strings.Contains(out.String(), "dog => false") {
		t.Errorf("missing word line in %q", out.String())
	}
}
