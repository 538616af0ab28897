package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sm-menu/cli/internal/app"
	"github.com/sm-menu/cli/internal/paths"
	"github.com/urfave/cli/v3"
)

// Starter runs a session configured by opts and returns its exit code.
type Starter func(opts app.Options) (int, error)

var logLevels = []string{"debug", "info", "warn", "error"}

// BuildCLI creates the launcher. The session's exit code is stored in
// exitCode once the action has run.
func BuildCLI(version string, start Starter, exitCode *int) *cli.Command {
	return &cli.Command{
		Name:            app.Name,
		Usage:           "An interactive hierarchical command menu",
		Version:         version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   paths.ConfigFilePath(),
				Usage:   "path to the preferences file",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: " + strings.Join(logLevels, ", "),
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "write logs to this file (enables logging)",
			},
			&cli.BoolFlag{
				Name:  "no-log",
				Usage: "disable logging even if enabled in the preferences file",
			},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			if c.NArg() > 0 {
				return fmt.Errorf("unexpected arguments: %s", strings.Join(c.Args().Slice(), " "))
			}

			level := strings.ToLower(c.String("log-level"))
			if level != "" && !slices.Contains(logLevels, level) {
				return fmt.Errorf("invalid --log-level %q (want one of %s)", level, strings.Join(logLevels, ", "))
			}

			code, err := start(app.Options{
				ConfigPath: c.String("config"),
				NoColor:    c.Bool("no-color"),
				LogLevel:   level,
				LogFile:    c.String("log-file"),
				NoLog:      c.Bool("no-log"),
				Version:    version,
			})
			if err != nil {
				return err
			}
			*exitCode = code
			return nil
		},
	}
}
