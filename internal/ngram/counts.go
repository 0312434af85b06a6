package ngram

import "github.com/samcharles93/songsmith/internal/tokenizer"

// Entry is one row of a Counts table.
type Entry struct {
	Token tokenizer.Token
	Count uint64
}

// Counts is a token frequency table that remembers first-seen order.
// Iterating in insertion order keeps weighted selection reproducible for a
// given seed, which a Go map alone cannot offer.
type Counts struct {
	index   map[tokenizer.Token]int
	tokens  []tokenizer.Token
	weights []uint64
	total   uint64
}

func newCounts() *Counts {
	return &Counts{index: make(map[tokenizer.Token]int)}
}

// add increments tok by n, appending it when unseen.
func (c *Counts) add(tok tokenizer.Token, n uint64) {
	i, ok := c.index[tok]
	if !ok {
		i = len(c.tokens)
		c.index[tok] = i
		c.tokens = append(c.tokens, tok)
		c.weights = append(c.weights, 0)
	}
	c.weights[i] += n
	c.total += n
}

// Count returns the occurrences recorded for tok.
func (c *Counts) Count(tok tokenizer.Token) uint64 {
	if c == nil {
		return 0
	}
	if i, ok := c.index[tok]; ok {
		return c.weights[i]
	}
	return 0
}

// Contains reports whether tok has been recorded.
func (c *Counts) Contains(tok tokenizer.Token) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[tok]
	return ok
}

// Total is the sum of all counts.
func (c *Counts) Total() uint64 {
	if c == nil {
		return 0
	}
	return c.total
}

// Len is the number of distinct tokens.
func (c *Counts) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tokens)
}

// Entries returns a copy of the table in insertion order.
func (c *Counts) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.tokens))
	for i, tok := range c.tokens {
		out[i] = Entry{Token: tok, Count: c.weights[i]}
	}
	return out
}

// Map returns the table as a plain map, dropping order.
func (c *Counts) Map() map[tokenizer.Token]uint64 {
	out := make(map[tokenizer.Token]uint64, c.Len())
	for _, e := range c.Entries() {
		out[e.Token] = e.Count
	}
	return out
}

// at returns the token stored at position i.
func (c *Counts) at(i int) tokenizer.Token {
	return c.tokens[i]
}
