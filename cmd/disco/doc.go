package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/discoursekit/disco/render"
	"github.com/discoursekit/disco/stac"
)

func docCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "list corpus dialogues, or show one",
		ArgsUsage: "CORPUS [ID]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "output JSON instead of text"},
			&cli.BoolFlag{Name: "no-color"},
			&cli.BoolFlag{Name: "no-acts", Usage: "hide dialogue act annotations"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("usage: doc CORPUS [ID]")
			}

			pool := &Pool{}
			defer pool.Close()

			repo, err := NewDialogueRepository(pool, c.Args().Get(0))
			if err != nil {
				return err
			}

			if c.NArg() == 1 {
				metas, err := repo.List()
				if err != nil {
					return err
				}
				for _, meta := range metas {
					fmt.Fprintf(ui.Out, "📖 %d %s\n", meta.Id, meta.Name)
				}
				return nil
			}

			id, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("dialogue id must be a number: %q", c.Args().Get(1))
			}

			d, err := repo.Read(id)
			if err != nil {
				return err
			}

			if c.Bool("json") {
				render.NewJSONRenderer(ui.Out).Render([]*stac.Dialogue{&d})
				return nil
			}

			r := render.NewTextRenderer(ui.Out)
			r.HasColor = !c.Bool("no-color")
			r.ShowActs = !c.Bool("no-acts")
			r.Dialogue(&d)
			return nil
		},
	}
}
