package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/songsmith/internal/version"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "songsmith",
		Usage:   "Train n-gram models on song lyrics and generate new songs",
		Version: version.String(),
		Flags:   append(globalFlags(), loggingFlags()...),
		Before:  setup,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			serveCmd(),
			trainCmd(),
			generateCmd(),
			tokenizeCmd(),
			versionCmd(),
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
