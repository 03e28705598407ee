package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/discoursekit/disco/ptb"
	"github.com/discoursekit/disco/render"
)

func labelCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "label",
		Usage:     "normalize treebank node labels to their basic category",
		ArgsUsage: "LABEL...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "tmp",
				Usage: "retain -TMP subcategories on the basic category",
			},
			&cli.BoolFlag{
				Name:  "np-tmp",
				Usage: "retain NP-TMP subcategories",
			},
			&cli.BoolFlag{Name: "no-color"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("usage: label LABEL...")
			}

			r := render.NewTextRenderer(ui.Out)
			r.HasColor = !c.Bool("no-color")

			for _, label := range c.Args().Slice() {
				r.Category(label, c.Bool("tmp"), c.Bool("np-tmp"))
			}
			return nil
		},
	}
}

func nonwordCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "nonword",
		Usage:     "test tokens for trace markers and other non-word content",
		ArgsUsage: "TOKEN...",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("usage: nonword TOKEN...")
			}

			for _, tok := range c.Args().Slice() {
				fmt.Fprintf(ui.Out, "%s => %t\n", tok, ptb.IsNonwordToken(tok))
			}
			return nil
		},
	}
}
