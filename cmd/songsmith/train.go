package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/songsmith/internal/ngram"
)

func trainCmd() *cli.Command {
	return &cli.Command{
		Name:  "train",
		Usage: "Train a model from the corpus and store its snapshot",
		Flags: append(corpusFlags(), modelFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyModelConfig(cmd, cfg)
			mode, err := ngram.ParseMode(modeName)
			if err != nil {
				return err
			}
			service, err := newService(ctx, true)
			if err != nil {
				return err
			}
			res := service.Train(ctx, mode)
			if res.Err != nil {
				return fmt.Errorf("train %s: %s", mode, res.Message)
			}
			_, _ = fmt.Fprintln(cmd.Root().Writer, res.Message)
			return nil
		},
	}
}
