package ngram

import (
	"fmt"

	"github.com/samcharles93/songsmith/internal/sampler"
	"github.com/samcharles93/songsmith/internal/tokenizer"
)

// Options controls a single generation.
type Options struct {
	// MaxTokens caps the output length. Zero or less produces no tokens.
	MaxTokens int
	// Start, when present in the model vocabulary, is emitted as the first
	// token instead of a random draw.
	Start tokenizer.Token
}

// Generate samples a token sequence from model. A nil model yields
// ErrUntrainedModel. Unigram models always run to MaxTokens; bigram models
// stop early when the current token has no recorded successors.
func Generate(model Model, s *sampler.Sampler, opts Options) ([]tokenizer.Token, error) {
	if model == nil {
		return nil, ErrUntrainedModel
	}
	if opts.MaxTokens <= 0 {
		return []tokenizer.Token{}, nil
	}
	switch m := model.(type) {
	case *UnigramModel:
		return generateUnigram(m, s, opts), nil
	case *BigramModel:
		return generateBigram(m, s, opts), nil
	default:
		return nil, fmt.Errorf("generate: unsupported model %T", model)
	}
}

func generateUnigram(m *UnigramModel, s *sampler.Sampler, opts Options) []tokenizer.Token {
	out := make([]tokenizer.Token, 0, opts.MaxTokens)
	if opts.Start != "" && m.counts.Contains(opts.Start) {
		out = append(out, opts.Start)
	}
	for len(out) < opts.MaxTokens {
		tok, ok := pick(m.counts, s)
		if !ok {
			break
		}
		out = append(out, tok)
	}
	return out
}

func generateBigram(m *BigramModel, s *sampler.Sampler, opts Options) []tokenizer.Token {
	out := make([]tokenizer.Token, 0, opts.MaxTokens)

	var cur tokenizer.Token
	switch {
	case opts.Start != "" && m.vocab.Contains(opts.Start):
		cur = opts.Start
	default:
		tok, ok := pick(m.marginal, s)
		if !ok {
			// Every document was a single token: no transitions exist, so
			// start from the vocabulary and stop right away.
			if tok, ok = pick(m.vocab, s); !ok {
				return out
			}
		}
		cur = tok
	}
	out = append(out, cur)

	for len(out) < opts.MaxTokens {
		next, ok := pick(m.successors[cur], s)
		if !ok {
			break
		}
		out = append(out, next)
		cur = next
	}
	return out
}

func pick(c *Counts, s *sampler.Sampler) (tokenizer.Token, bool) {
	if c.Len() == 0 {
		return "", false
	}
	i := s.Pick(c.weights, c.total)
	if i < 0 {
		return "", false
	}
	return c.at(i), true
}
