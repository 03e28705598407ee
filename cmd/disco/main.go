package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// Set at build time via -ldflags
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fmt.Fprintf(ui.Err, "disco: %v\n", err)
		os.Exit(1)
	}
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:    "disco",
		Usage:   "align and extract features from discourse annotated corpora",
		Version: fmt.Sprintf("%s (commit: %s)", BuildTag, BuildCommit),
		Writer:  ui.Out,
		ErrWriter: ui.Err,
		Commands: []*cli.Command{
			extractCommand(ui),
			docCommand(ui),
			labelCommand(ui),
			nonwordCommand(ui),
			statCommand(ui),
			importCommand(ui),
			replCommand(ui),
		},
	}
}
