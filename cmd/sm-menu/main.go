package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sm-menu/cli/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	exitCode := 0
	cmd := BuildCLI(version, startSession, &exitCode)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// startSession runs one interactive session and returns its exit code.
func startSession(opts app.Options) (int, error) {
	a, err := app.New(opts)
	if err != nil {
		return 1, err
	}
	defer func() { _ = app.Close(a) }()
	return a.Run(), nil
}
