package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/songsmith/internal/corpus"
	"github.com/samcharles93/songsmith/internal/tokenizer"
)

func tokenizeCmd() *cli.Command {
	return &cli.Command{
		Name:      "tokenize",
		Usage:     "Print the tokens of each corpus document, one document per line",
		ArgsUsage: "[corpus]",
		Flags:     corpusFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cfg.Corpus != "" && !cmd.IsSet("corpus") {
				corpusPath = cfg.Corpus
			}
			if cmd.Args().Present() {
				corpusPath = cmd.Args().First()
			}
			if strings.TrimSpace(corpusPath) == "" {
				return errMissingCorpus
			}
			store, err := corpus.Open(corpusPath)
			if err != nil {
				return err
			}
			docs, err := store.Documents(ctx)
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			for _, doc := range tokenizer.TokenizeAll(docs) {
				_, _ = fmt.Fprintln(w, strings.Join(doc.Strings(), " "))
			}
			return nil
		},
	}
}
