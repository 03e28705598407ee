package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/discoursekit/disco/stat"
)

func statCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "summarize a corpus: unit counts and label distributions",
		ArgsUsage: "CORPUS",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("usage: stat CORPUS")
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

			hdl := stat.NewHandler()
			for _, d := range dialogues {
				hdl.Aggregate(d)
			}
			stats := hdl.Get()

			fmt.Fprintf(ui.Out, "Dialogues %d, EDUs %d (mean %d per dialogue), relations %d\n",
				stats.NumDialogues, stats.NumEdus, stats.EdusPerDialogueMean, stats.NumRelations)

			fmt.Fprintln(ui.Out, "Dialogue acts:")
			printDis(ui, stats.ActDis)

			fmt.Fprintln(ui.Out, "Relations:")
			printDis(ui, stats.RelationDis)
			return nil
		},
	}
}

func printDis(ui UI, dis map[string]int) {
	keys := make([]string, 0, len(dis))
	for k := range dis {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if dis[keys[i]] != dis[keys[j]] {
			return dis[keys[i]] > dis[keys[j]]
		}
		return keys[i] < keys[j]
	})

	for _, k := range keys {
		name := k
		if name == "" {
			name = "(unannotated)"
		}
		fmt.Fprintf(ui.Out, "%6d %s\n", dis[k], name)
	}
}
