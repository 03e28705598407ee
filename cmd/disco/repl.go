package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/discoursekit/disco/render"
	"github.com/discoursekit/disco/repl"
)

func replCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "repl",
		Usage:     "interactive label and corpus inspection",
		ArgsUsage: "CORPUS",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("usage: repl CORPUS")
			}

			pool := &Pool{}
			defer pool.Close()

			repo, err := NewDialogueRepository(pool, c.Args().Get(0))
			if err != nil {
				return err
			}

			r := render.NewTextRenderer(ui.Out)
			r.HasColor = true

			h := repl.NewHandler(repo, r)
			return h.Run()
		},
	}
}
