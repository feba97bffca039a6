package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   !isatty.IsTerminal(os.Stderr.Fd()),
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return l
}

// colorEnabled reports whether stdout should carry ANSI colors.
func colorEnabled(c *cli.Context) bool {
	if c.Bool("no-color") {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func setup(c *cli.Context) error {
	switch {
	case c.Bool("verbose"):
		logger.SetLevel(logrus.DebugLevel)
	case c.Bool("quiet"):
		logger.SetLevel(logrus.WarnLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	if f, ok := logger.Formatter.(*logrus.TextFormatter); ok && c.Bool("no-color") {
		f.DisableColors = true
	}
	return nil
}
