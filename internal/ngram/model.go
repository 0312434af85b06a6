// Package ngram trains unigram and bigram frequency models over a tokenized
// lyrics corpus and samples new token sequences from them.
package ngram

import (
	"time"

	"github.com/samcharles93/songsmith/internal/tokenizer"
)

// Model is a trained language model. It is implemented only by
// *UnigramModel and *BigramModel; a nil Model means "untrained".
// Models are immutable once returned by Train or Load.
type Model interface {
	Mode() Mode
	// Vocabulary holds every token seen during training with its count.
	Vocabulary() *Counts
	// TrainedAt is when the model was built.
	TrainedAt() time.Time

	sealed()
}

// UnigramModel is a context-free distribution over tokens.
type UnigramModel struct {
	counts    *Counts
	trainedAt time.Time
}

func (m *UnigramModel) Mode() Mode { return Unigram }
func (m *UnigramModel) Vocabulary() *Counts { return m.counts }
func (m *UnigramModel) TrainedAt() time.Time { return m.trainedAt }
func (*UnigramModel) sealed() {}

// Counts is the token frequency table the model samples from.
func (m *UnigramModel) Counts() *Counts { return m.counts }

// BigramModel holds, for each context token, the distribution of tokens that
// followed it within the same document.
type BigramModel struct {
	contexts   []tokenizer.Token
	successors map[tokenizer.Token]*Counts
	// marginal weights each context by the number of transitions leaving it.
	marginal  *Counts
	vocab     *Counts
	trainedAt time.Time
}

func (m *BigramModel) Mode() Mode { return Bigram }
func (m *BigramModel) Vocabulary() *Counts { return m.vocab }
func (m *BigramModel) TrainedAt() time.Time { return m.trainedAt }
func (*BigramModel) sealed() {}

// Successors returns the successor table for context, or nil when the token
// never appeared in a non-terminal position.
func (m *BigramModel) Successors(context tokenizer.Token) *Counts {
	return m.successors[context]
}

// Contexts lists every context token in insertion order.
func (m *BigramModel) Contexts() []tokenizer.Token {
	return append([]tokenizer.Token(nil), m.contexts...)
}

// Marginal is the start distribution: each context weighted by the total of
// its successor counts.
func (m *BigramModel) Marginal() *Counts { return m.marginal }

// Transitions returns the number of recorded (context, successor) pairs.
func (m *BigramModel) Transitions() uint64 { return m.marginal.Total() }

func newBigramModel() *BigramModel {
	return &BigramModel{
		successors: make(map[tokenizer.Token]*Counts),
		marginal:   newCounts(),
		vocab:      newCounts(),
	}
}

func (m *BigramModel) addTransition(from, to tokenizer.Token, n uint64) {
	succ, ok := m.successors[from]
	if !ok {
		succ = newCounts()
		m.successors[from] = succ
		m.contexts = append(m.contexts, from)
	}
	succ.add(to, n)
	m.marginal.add(from, n)
}
