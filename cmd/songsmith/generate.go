package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/songsmith/internal/ngram"
	"github.com/samcharles93/songsmith/internal/songwriter"
)

func generateCmd() *cli.Command {
	var (
		maxTokens  int64
		seed       int64
		start      string
		showTokens bool
	)

	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a song from a trained model snapshot",
		Flags: append(modelFlags(),
			&cli.Int64Flag{
				Name:        "max-tokens",
				Aliases:     []string{"n"},
				Usage:       "maximum number of words to generate",
				Value:       64,
				Destination: &maxTokens,
			},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "random seed (-1 = time based)",
				Value:       -1,
				Destination: &seed,
			},
			&cli.StringFlag{
				Name:        "start",
				Aliases:     []string{"s"},
				Usage:       "first word of the song, if the model knows it",
				Destination: &start,
			},
			&cli.BoolFlag{
				Name:        "tokens",
				Usage:       "print the raw token sequence instead of song text",
				Destination: &showTokens,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyModelConfig(cmd, cfg)
			applyGenerateConfig(cmd, cfg, &maxTokens, &seed)
			mode, err := ngram.ParseMode(modeName)
			if err != nil {
				return err
			}
			service, err := newService(ctx, false)
			if err != nil {
				return err
			}
			res := service.Generate(ctx, songwriter.GenerateRequest{
				Mode:      mode,
				MaxTokens: int(maxTokens),
				Start:     start,
				Seed:      seed,
			})
			if errors.Is(res.Err, ngram.ErrUntrainedModel) {
				return fmt.Errorf("%s: run `songsmith train --mode %s` first", songwriter.UntrainedMessage, mode)
			}
			if res.Err != nil {
				return res.Err
			}
			out := res.Song
			if showTokens {
				out = strings.Join(res.Tokens, " ")
			}
			_, _ = fmt.Fprintln(cmd.Root().Writer, out)
			return nil
		},
	}
}
