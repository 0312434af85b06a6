package ngram

import (
	"time"

	"github.com/samcharles93/songsmith/internal/tokenizer"
)

// now is a seam for tests.
var now = time.Now

// Train builds a model of the requested mode from corpus. It returns
// ErrEmptyCorpus when the corpus holds no tokens and an *InvalidModeError for
// an unsupported mode. Training the same corpus twice yields models with
// identical counts in identical order.
func Train(corpus tokenizer.Corpus, mode Mode) (Model, error) {
	if !mode.Valid() {
		return nil, &InvalidModeError{Value: mode.String()}
	}
	if corpus.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	switch mode {
	case Unigram:
		return trainUnigram(corpus), nil
	default:
		return trainBigram(corpus), nil
	}
}

func trainUnigram(corpus tokenizer.Corpus) *UnigramModel {
	counts := newCounts()
	for _, doc := range corpus {
		for _, tok := range doc {
			counts.add(tok, 1)
		}
	}
	return &UnigramModel{counts: counts, trainedAt: now()}
}

// trainBigram counts adjacent pairs inside each document. The last token of
// a document is never linked to the first token of the next.
func trainBigram(corpus tokenizer.Corpus) *BigramModel {
	m := newBigramModel()
	for _, doc := range corpus {
		for i, tok := range doc {
			m.vocab.add(tok, 1)
			if i+1 < len(doc) {
				m.addTransition(tok, doc[i+1], 1)
			}
		}
	}
	m.trainedAt = now()
	return m
}
