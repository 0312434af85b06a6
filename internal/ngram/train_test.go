package ngram

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samcharles93/songsmith/internal/tokenizer"
)

func loveCorpus() tokenizer.Corpus {
	return tokenizer.Corpus{
		{"i", "love", "you"},
		{"i", "need", "you"},
	}
}

func TestTrainUnigramCounts(t *testing.T) {
	t.Parallel()
	model, err := Train(loveCorpus(), Unigram)
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	um, ok := model.(*UnigramModel)
	if !ok {
		t.Fatalf("expected *UnigramModel, got %T", model)
	}
	want := []Entry{
		{Token: "i", Count: 2},
		{Token: "love", Count: 1},
		{Token: "you", Count: 2},
		{Token: "need", Count: 1},
	}
	if diff := cmp.Diff(want, um.Counts().Entries()); diff != "" {
		t.Fatalf("unexpected unigram entries (-want +got):\n%s", diff)
	}
	if um.Counts().Total() != 6 {
		t.Fatalf("expected total 6, got %d", um.Counts().Total())
	}
}

func TestTrainBigramDoesNotBridgeDocuments(t *testing.T) {
	t.Parallel()
	model, err := Train(loveCorpus(), Bigram)
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	bm := model.(*BigramModel)

	want := map[tokenizer.Token]map[tokenizer.Token]uint64{
		"i":    {"love": 1, "need": 1},
		"love": {"you": 1},
		"need": {"you": 1},
	}
	got := make(map[tokenizer.Token]map[tokenizer.Token]uint64)
	for _, ctx := range bm.Contexts() {
		got[ctx] = bm.Successors(ctx).Map()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected transitions (-want +got):\n%s", diff)
	}
	if bm.Successors("you") != nil {
		t.Fatalf("terminal token must not become a context across documents")
	}
	if bm.Transitions() != 4 {
		t.Fatalf("expected 4 transitions, got %d", bm.Transitions())
	}
	if bm.Marginal().Count("i") != 2 {
		t.Fatalf("expected marginal weight 2 for %q, got %d", "i", bm.Marginal().Count("i"))
	}
}

func TestTrainEmptyCorpus(t *testing.T) {
	t.Parallel()
	for _, mode := range Modes {
		for _, corpus := range []tokenizer.Corpus{nil, {}, {{}, {}}} {
			_, err := Train(corpus, mode)
			if !errors.Is(err, ErrEmptyCorpus) {
				t.Fatalf("%s: expected ErrEmptyCorpus, got %v", mode, err)
			}
		}
	}
}

func TestTrainInvalidMode(t *testing.T) {
	t.Parallel()
	_, err := Train(loveCorpus(), Mode(7))
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
	var modeErr *InvalidModeError
	if !errors.As(err, &modeErr) {
		t.Fatalf("expected *InvalidModeError, got %T", err)
	}
}

func TestTrainIdempotent(t *testing.T) {
	t.Parallel()
	for _, mode := range Modes {
		a, err := Train(loveCorpus(), mode)
		if err != nil {
			t.Fatalf("%s: first Train() error = %v", mode, err)
		}
		b, err := Train(loveCorpus(), mode)
		if err != nil {
			t.Fatalf("%s: second Train() error = %v", mode, err)
		}
		if diff := cmp.Diff(a.Vocabulary().Entries(), b.Vocabulary().Entries()); diff != "" {
			t.Fatalf("%s: vocabulary differs (-first +second):\n%s", mode, diff)
		}
		if mode == Bigram {
			ab, bb := a.(*BigramModel), b.(*BigramModel)
			if diff := cmp.Diff(ab.Contexts(), bb.Contexts()); diff != "" {
				t.Fatalf("contexts differ:\n%s", diff)
			}
			for _, ctx := range ab.Contexts() {
				if diff := cmp.Diff(ab.Successors(ctx).Entries(), bb.Successors(ctx).Entries()); diff != "" {
					t.Fatalf("successors of %q differ:\n%s", ctx, diff)
				}
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"unigram", Unigram, false},
		{"Bigram", Bigram, false},
		{" bi ", Bigram, false},
		{"2", Bigram, false},
		{"trigram", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if ModeFromUnigramFlag(true) != Unigram || ModeFromUnigramFlag(false) != Bigram {
		t.Fatalf("unexpected mapping from unigram flag")
	}
}
