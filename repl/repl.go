// Package repl is an interactive console for poking at corpora and
// treebank labels without re-running the extractor: look up basic
// categories, test nonword tokens, browse dialogues.
package repl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/discoursekit/disco/ptb"
	"github.com/discoursekit/disco/render"
	"github.com/discoursekit/disco/stac"
	"github.com/discoursekit/disco/storage"
)

// commonLabels feeds label completion. Not exhaustive; anything can
// still be typed in full.
var commonLabels = []string{
	"NP", "NP-SBJ", "NP-TMP", "VP", "PP", "PP-TMP", "S", "S-TPC",
	"SBAR", "ADJP", "ADVP", "WHNP", "-LRB-", "-RRB-", "-NONE-",
}

type Handler struct {
	DialogueRepo storage.DialogueReader
	Renderer     *render.TextRenderer

	retainTMP   bool
	retainNPTMP bool
}

func NewHandler(dr storage.DialogueReader, r *render.TextRenderer) *Handler {
	return &Handler{
		DialogueRepo: dr,
		Renderer:     r,
	}
}

func (h *Handler) Run() error {
	fmt.Println("🔑 Ctrl+X: toggle TMP retention, Ctrl+F: toggle NP-TMP retention, 🔧 quit")

	metas, err := h.DialogueRepo.List()
	if err != nil {
		return err
	}

	history := []string{}

	for {
		in := prompt.Input("      🌲 ", h.completer(metas),
			prompt.OptionTitle("disco repl"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.retainTMP = !h.retainTMP
					fmt.Printf("retain -TMP subcategories: %t\n", h.retainTMP)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.retainNPTMP = !h.retainNPTMP
					fmt.Printf("retain NP-TMP subcategories: %t\n", h.retainNPTMP)
				}}),
		)

		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		if in == "quit" || in == "exit" {
			return nil
		}

		history = append(history, in)

		if err := h.eval(in, metas); err != nil {
			fmt.Printf("✍  %s\n", err)
		}
	}
}

func (h *Handler) eval(in string, metas []stac.Dialogue) error {
	fields := strings.Fields(in)

	switch fields[0] {
	case "cat":
		for _, label := range fields[1:] {
			h.Renderer.Category(label, h.retainTMP, h.retainNPTMP)
		}
		return nil

	case "nonword":
		for _, tok := range fields[1:] {
			fmt.Printf("%s => %t\n", tok, ptb.IsNonwordToken(tok))
		}
		return nil

	case "doc":
		if len(fields) < 2 {
			for _, meta := range metas {
				fmt.Printf("📖 %d %s\n", meta.Id, meta.Name)
			}
			return nil
		}
		return h.renderDialogue(fields[1], metas)

	case "acts":
		return h.actDistribution()
	}

	return fmt.Errorf("unknown command: %s (try cat, nonword, doc, acts, quit)", fields[0])
}

func (h *Handler) renderDialogue(arg string, metas []stac.Dialogue) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		// not a number, match by name
		id = -1
		for _, meta := range metas {
			if strings.Contains(meta.Name, arg) {
				id = meta.Id
				break
			}
		}
		if id < 0 {
			return fmt.Errorf("no dialogue matches %q", arg)
		}
	}

	d, err := h.DialogueRepo.Read(id)
	if err != nil {
		return err
	}

	h.Renderer.Dialogue(&d)
	return nil
}

func (h *Handler) actDistribution() error {
	dialogues, err := storage.ReadAll(h.DialogueRepo, nil)
	if err != nil {
		return err
	}

	counts := map[string]int{}
	for _, d := range dialogues {
		for _, edu := range d.Edus {
			counts[edu.Act]++
		}
	}

	acts := make([]string, 0, len(counts))
	for act := range counts {
		acts = append(acts, act)
	}
	sort.Strings(acts)

	for _, act := range acts {
		name := act
		if name == "" {
			name = "(unannotated)"
		}
		fmt.Printf("%6d %s\n", counts[act], name)
	}
	return nil
}

func (h *Handler) completer(metas []stac.Dialogue) prompt.Completer {
	return func(d prompt.Document) []prompt.Suggest {
		suggestions := []prompt.Suggest{
			{Text: "cat", Description: "basic category of a treebank label"},
			{Text: "nonword", Description: "test a token for trace markers"},
			{Text: "doc", Description: "list or show dialogues"},
			{Text: "acts", Description: "dialogue act distribution"},
			{Text: "quit"},
		}

		for _, label := range commonLabels {
			suggestions = append(suggestions, prompt.Suggest{Text: label})
		}
		for _, meta := range metas {
			suggestions = append(suggestions, prompt.Suggest{
				Text:        meta.Name,
				Description: "dialogue",
			})
		}

		return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
	}
}
