package ngram

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshotRoundTripPreservesOrder(t *testing.T) {
	t.Parallel()
	for _, mode := range Modes {
		orig := mustTrain(t, loveCorpus(), mode)
		var buf bytes.Buffer
		if err := Save(&buf, orig); err != nil {
			t.Fatalf("%s: Save() error = %v", mode, err)
		}
		loaded, err := Load(&buf)
		if err != nil {
			t.Fatalf("%s: Load() error = %v", mode, err)
		}
		if loaded.Mode() != mode {
			t.Fatalf("expected mode %s, got %s", mode, loaded.Mode())
		}
		if diff := cmp.Diff(orig.Vocabulary().Entries(), loaded.Vocabulary().Entries()); diff != "" {
			t.Fatalf("%s: vocabulary differs (-orig +loaded):\n%s", mode, diff)
		}
		if !orig.TrainedAt().Equal(loaded.TrainedAt()) {
			t.Fatalf("%s: trained_at changed: %v vs %v", mode, orig.TrainedAt(), loaded.TrainedAt())
		}
		if mode != Bigram {
			continue
		}
		ob, lb := orig.(*BigramModel), loaded.(*BigramModel)
		if diff := cmp.Diff(ob.Contexts(), lb.Contexts()); diff != "" {
			t.Fatalf("contexts differ:\n%s", diff)
		}
		if diff := cmp.Diff(ob.Marginal().Entries(), lb.Marginal().Entries()); diff != "" {
			t.Fatalf("marginal differs:\n%s", diff)
		}
	}
}

func TestSaveUntrained(t *testing.T) {
	t.Parallel()
	if err := Save(&bytes.Buffer{}, nil); !errors.Is(err, ErrUntrainedModel) {
		t.Fatalf("expected ErrUntrainedModel, got %v", err)
	}
}

func TestLoadRejectsBadSnapshots(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"not json":        `{`,
		"wrong version":   `{"version":9,"mode":"unigram","vocabulary":[{"token":"a","count":1}]}`,
		"empty vocab":     `{"version":1,"mode":"unigram","vocabulary":[]}`,
		"bad mode":        `{"version":1,"mode":"trigram","vocabulary":[{"token":"a","count":1}]}`,
		"zero count":      `{"version":1,"mode":"unigram","vocabulary":[{"token":"a","count":0}]}`,
		"unknown context": `{"version":1,"mode":"bigram","vocabulary":[{"token":"a","count":1}],"contexts":[{"token":"b","successors":[{"token":"a","count":1}]}]}`,
	}
	for name, body := range tests {
		if _, err := Load(strings.NewReader(body)); !errors.Is(err, ErrBadSnapshot) {
			t.Fatalf("%s: expected ErrBadSnapshot, got %v", name, err)
		}
	}
}
