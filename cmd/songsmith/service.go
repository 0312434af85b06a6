package main

import (
	"context"
	"strings"

	"github.com/samcharles93/songsmith/internal/corpus"
	"github.com/samcharles93/songsmith/internal/logger"
	"github.com/samcharles93/songsmith/internal/ngram"
	"github.com/samcharles93/songsmith/internal/songwriter"
)

// newService wires the corpus store, the registry and the songwriter. When
// requireCorpus is false a missing corpus is allowed; training then fails
// with a clear message instead.
func newService(ctx context.Context, requireCorpus bool) (*songwriter.Service, error) {
	log := logger.FromContext(ctx)

	var store corpus.Store
	if strings.TrimSpace(corpusPath) != "" {
		s, err := corpus.Open(corpusPath)
		if err != nil {
			return nil, err
		}
		store = s
	} else if requireCorpus {
		return nil, errMissingCorpus
	}

	registry := ngram.NewRegistry(ngram.WithStateDir(stateDir))
	restored, err := registry.Restore()
	if err != nil {
		log.Warn("could not restore model snapshots", "dir", stateDir, "error", err)
	}
	for _, mode := range restored {
		log.Debug("restored model", "mode", mode.String(), "dir", stateDir)
	}
	return songwriter.NewService(store, registry, serviceConfig(cfg)), nil
}
