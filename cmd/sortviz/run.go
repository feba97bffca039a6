package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/sortviz/arrays"
	"github.com/katalvlaran/sortviz/catalog"
	"github.com/katalvlaran/sortviz/narrate"
	"github.com/katalvlaran/sortviz/playback"
	"github.com/katalvlaran/sortviz/sorting"
	"github.com/katalvlaran/sortviz/stats"
	"github.com/katalvlaran/sortviz/step"
)

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"a"},
			Value:   string(sorting.BubbleSort),
			Usage:   "bubble, selection, insertion, merge, quick or heap",
		},
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "comma-separated numbers; random values are used when empty",
		},
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"n"},
			Value:   10,
			Usage:   "number of random values",
		},
		&cli.Float64Flag{
			Name:  "min",
			Value: arrays.DefaultDisplayMin,
			Usage: "smallest random value",
		},
		&cli.Float64Flag{
			Name:  "max",
			Value: arrays.DefaultDisplayMax,
			Usage: "largest random value",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for random values (0 picks one from the clock)",
		},
		&cli.DurationFlag{
			Name:  "interval",
			Value: 100 * time.Millisecond,
			Usage: "delay between steps",
		},
		&cli.BoolFlag{
			Name:  "narrate",
			Usage: "print an explanation under every step",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print the whole trace as JSON instead of playing it",
		},
	}
}

// loadInput builds the starting array from --input or the random flags.
func loadInput(c *cli.Context) ([]step.Element, error) {
	if text := c.String("input"); text != "" {
		return arrays.ParseInput(text)
	}
	opts := []arrays.Option{arrays.WithIntegers()}
	if seed := c.Int64("seed"); seed != 0 {
		opts = append(opts, arrays.WithSeed(seed))
	}
	return arrays.GenerateRandom(c.Int("size"), c.Float64("min"), c.Float64("max"), opts...)
}

func run(c *cli.Context) error {
	alg, err := sorting.Parse(c.String("algorithm"))
	if err != nil {
		return err
	}
	input, err := loadInput(c)
	if err != nil {
		return err
	}

	var counter stats.Counter
	trace, err := sorting.Run(alg, input, sorting.WithOnStep(counter.OnStep))
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"algorithm":   alg,
		"elements":    len(input),
		"steps":       trace.Len(),
		"comparisons": counter.Stats().Comparisons,
		"swaps":       counter.Stats().Swaps,
	}).Debug("trace generated")

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		return enc.Encode(struct {
			Algorithm sorting.Algorithm `json:"algorithm"`
			Steps     step.Trace        `json:"steps"`
		}{alg, trace})
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	r := renderer{w: c.App.Writer, color: colorEnabled(c)}
	fmt.Fprintf(c.App.Writer, "%s on %d elements\n", catalog.Name(alg), len(input))

	p := playback.New(trace)
	err = p.Play(ctx, c.Duration("interval"), func(i int, s step.Step) error {
		r.step(i, s)
		if c.Bool("narrate") {
			r.note(narrate.Describe(alg, s))
		}
		return nil
	})
	if errors.Is(err, context.Canceled) {
		logger.Warnf("stopped at step %d of %d", p.Index()+1, p.Len())
	} else if err != nil {
		return err
	}

	st := p.Stats()
	fmt.Fprintf(c.App.Writer, "comparisons=%d swaps=%d efficiency=%.1f%% elapsed=%s\n",
		st.Comparisons, st.Swaps, stats.Efficiency(st, len(input)), st.Elapsed.Round(time.Millisecond))

	return nil
}

func cmdList() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "describe the available algorithms",
		Action: func(c *cli.Context) error {
			infos, err := catalog.All()
			if err != nil {
				return err
			}
			for _, info := range infos {
				stable := "unstable"
				if info.Stable {
					stable = "stable"
				}
				fmt.Fprintf(c.App.Writer, "%-10s %-15s best %-11s avg %-11s worst %-11s space %-9s %s\n",
					info.Key, info.Name, info.Time.Best, info.Time.Average, info.Time.Worst, info.Space, stable)
			}
			return nil
		},
	}
}
