package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/discoursekit/disco/storage/filesystem"
	"github.com/discoursekit/disco/storage/sqlite/zombiezen"
)

func importCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "import a filesystem corpus into a sqlite corpus file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Required: true, Usage: "corpus directory"},
			&cli.StringFlag{Name: "to", Required: true, Usage: "sqlite file"},
		},
		Action: func(c *cli.Context) error {
			src, err := filesystem.NewDialogueStore(c.String("from"))
			if err != nil {
				return err
			}

			pool, err := zombiezen.NewPool(c.String("to"))
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := zombiezen.CreateSchema(pool); err != nil {
				return err
			}

			dst := zombiezen.NewDialogueStore(pool)

			metas, err := src.List()
			if err != nil {
				return err
			}
			fmt.Fprintf(ui.Out, "Reading dialogues from %s...\n", c.String("from"))

			uiprogress.Start()
			bar := uiprogress.AddBar(len(metas))
			bar.AppendCompleted()
			bar.PrependElapsed()

			for _, meta := range metas {
				d, err := src.Read(meta.Id)
				if err != nil {
					return err
				}
				if err := dst.Write(d); err != nil {
					return err
				}
				bar.Incr()
			}
			uiprogress.Stop()

			fmt.Fprintf(ui.Out, "Imported %d dialogues into %s\n", len(metas), c.String("to"))
			return nil
		},
	}
}
