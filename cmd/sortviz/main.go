// Command sortviz replays a sorting trace in the terminal.
//
//	sortviz -a quick -i "64, 34, 25, 12, 22, 11, 90" --narrate
//	sortviz -a heap -n 20 --seed 7 --interval 50ms
//	sortviz -a merge -i "3,1,2" --json > trace.json
//	sortviz list
package main

import (
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "sortviz",
		Usage:  "step through classic comparison sorts",
		Flags:  append(runFlags(), globalFlags()...),
		Before: setup,
		Action: run,
		Commands: []*cli.Command{
			cmdList(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug"},
			Usage:   "enable debug log",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "show warnings and errors only",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors",
		},
	}
}
