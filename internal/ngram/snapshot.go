package ngram

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/samcharles93/songsmith/internal/tokenizer"
)

const snapshotVersion = 1

// ErrBadSnapshot is returned by Load for unreadable or inconsistent input.
var ErrBadSnapshot = errors.New("invalid model snapshot")

type snapshot struct {
	Version    int               `json:"version"`
	Mode       Mode              `json:"mode"`
	TrainedAt  time.Time         `json:"trained_at"`
	Vocabulary []snapshotEntry   `json:"vocabulary"`
	Contexts   []snapshotContext `json:"contexts,omitempty"`
}

type snapshotEntry struct {
	Token tokenizer.Token `json:"token"`
	Count uint64          `json:"count"`
}

type snapshotContext struct {
	Token      tokenizer.Token `json:"token"`
	Successors []snapshotEntry `json:"successors"`
}

// Save writes model as JSON. Tables are stored as arrays so that insertion
// order, and with it seeded sampling, survives a round trip.
func Save(w io.Writer, model Model) error {
	if model == nil {
		return ErrUntrainedModel
	}
	snap := snapshot{
		Version:    snapshotVersion,
		Mode:       model.Mode(),
		TrainedAt:  model.TrainedAt().UTC(),
		Vocabulary: toSnapshotEntries(model.Vocabulary()),
	}
	if bm, ok := model.(*BigramModel); ok {
		snap.Contexts = make([]snapshotContext, 0, len(bm.contexts))
		for _, ctx := range bm.contexts {
			snap.Contexts = append(snap.Contexts, snapshotContext{
				Token:      ctx,
				Successors: toSnapshotEntries(bm.successors[ctx]),
			})
		}
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Load reads a model written by Save.
func Load(r io.Reader) (Model, error) {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, snap.Version)
	}
	if len(snap.Vocabulary) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", ErrBadSnapshot)
	}

	vocab := newCounts()
	for _, e := range snap.Vocabulary {
		if e.Token == "" || e.Count == 0 {
			return nil, fmt.Errorf("%w: bad vocabulary entry %q", ErrBadSnapshot, e.Token)
		}
		vocab.add(e.Token, e.Count)
	}

	switch snap.Mode {
	case Unigram:
		if len(snap.Contexts) > 0 {
			return nil, fmt.Errorf("%w: unigram snapshot has contexts", ErrBadSnapshot)
		}
		return &UnigramModel{counts: vocab, trainedAt: snap.TrainedAt}, nil
	case Bigram:
		m := newBigramModel()
		m.vocab = vocab
		m.trainedAt = snap.TrainedAt
		for _, c := range snap.Contexts {
			if !vocab.Contains(c.Token) {
				return nil, fmt.Errorf("%w: context %q not in vocabulary", ErrBadSnapshot, c.Token)
			}
			for _, s := range c.Successors {
				if !vocab.Contains(s.Token) || s.Count == 0 {
					return nil, fmt.Errorf("%w: bad successor %q of %q", ErrBadSnapshot, s.Token, c.Token)
				}
				m.addTransition(c.Token, s.Token, s.Count)
			}
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, &InvalidModeError{Value: snap.Mode.String()})
	}
}

func toSnapshotEntries(c *Counts) []snapshotEntry {
	entries := c.Entries()
	out := make([]snapshotEntry, len(entries))
	for i, e := range entries {
		out[i] = snapshotEntry{Token: e.Token, Count: e.Count}
	}
	return out
}
