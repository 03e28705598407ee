package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/discoursekit/disco/dump"
	"github.com/discoursekit/disco/learn"
	"github.com/discoursekit/disco/stac"
)

func extractCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "extract feature vectors and labels from a corpus",
		ArgsUsage: "CORPUS OUTPUT",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "single",
				Usage: "features for single EDUs (instead of pairs)",
			},
			&cli.BoolFlag{
				Name:  "parsing",
				Usage: "treat the corpus as unannotated live data",
			},
			&cli.IntFlag{
				Name:  "window",
				Value: 5,
				Usage: "ignore EDU pairs greater this distance apart (-1 for no window)",
			},
		},
		Action: func(c *cli.Context) error {
			// conflicting modes are rejected before any corpus IO
			if c.Bool("parsing") && c.Bool("single") {
				return errors.New("can't mix --parsing and --single")
			}
			if c.NArg() != 2 {
				return errors.New("usage: extract CORPUS OUTPUT")
			}

			pool := &Pool{}
			defer pool.Close()

			repo, err := NewDialogueRepository(pool, c.Args().Get(0))
			if err != nil {
				return err
			}

			dialogues, err := corpusLibrary(repo)
			if err != nil {
				return err
			}

			if c.Bool("parsing") {
				dialogues = stripAnnotations(dialogues)
			}

			output := c.Args().Get(1)
			if err := os.MkdirAll(output, 0o755); err != nil {
				return err
			}
			base := filepath.Join(output, filepath.Base(filepath.Clean(c.Args().Get(0))))

			if c.Bool("single") {
				return extractSingles(dialogues, base, ui)
			}
			return extractPairs(dialogues, base, c.Int("window"), ui)
		},
	}
}

// extractSingles dumps one instance per EDU with its dialogue act.
func extractSingles(dialogues []*stac.Dialogue, base string, ui UI) error {
	outFile := base + ".just-edus.sparse"

	feats := learn.NewEDUFeatures()
	rows := feats.TransformSingles(dialogues)

	labtor := learn.NewDialogueActVectorizer(
		func(d *stac.Dialogue) []stac.EDU { return d.Edus },
		stac.DialogueActs)
	labels := labtor.Transform(dialogues)

	err := writeFile(outFile, func(w io.Writer) error {
		return dump.SVMLight(w, rows, labels, dump.LabelsComment(labtor.Labels))
	})
	if err != nil {
		return err
	}

	return dumpSidecars(dialogues, feats, outFile, ui)
}

// extractPairs dumps one instance per EDU pair with its relation
// label.
func extractPairs(dialogues []*stac.Dialogue, base string, window int, ui UI) error {
	outFile := base + ".relations.sparse"

	feats := learn.NewEDUFeatures()
	rows := feats.TransformPairs(dialogues, window)

	labtor := learn.NewLabelVectorizer(
		func(d *stac.Dialogue) []stac.Pair { return d.EDUPairs(window) },
		stac.RelationLabels())
	labels := labtor.Transform(dialogues)

	err := writeFile(outFile, func(w io.Writer) error {
		return dump.SVMLight(w, rows, labels, dump.LabelsComment(labtor.Labels))
	})
	if err != nil {
		return err
	}

	return dumpSidecars(dialogues, feats, outFile, ui)
}

// dumpSidecars writes the EDU input table and the vocabulary next to
// the sparse file. The vocabulary is complete here because the sparse
// file consumed the row sequence first.
func dumpSidecars(dialogues []*stac.Dialogue, feats *learn.EDUFeatures, outFile string, ui UI) error {
	err := writeFile(outFile+".edu_input", func(w io.Writer) error {
		return dump.EDUInput(w, dialogues)
	})
	if err != nil {
		return err
	}

	err = writeFile(outFile+".vocab", func(w io.Writer) error {
		return dump.Vocabulary(w, feats.Vocab)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "✍  %s (%d features)\n", outFile, feats.Vocab.Len())
	return nil
}

// stripAnnotations returns copies of the dialogues with dialogue acts
// and relations removed, as for live parsing input.
func stripAnnotations(dialogues []*stac.Dialogue) []*stac.Dialogue {
	stripped := make([]*stac.Dialogue, 0, len(dialogues))
	for _, d := range dialogues {
		cp := stac.Dialogue{Id: d.Id, Name: d.Name}
		for _, edu := range d.Edus {
			edu.Act = ""
			cp.Edus = append(cp.Edus, edu)
		}
		stripped = append(stripped, &cp)
	}
	return stripped
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
