// Package tokenizer splits raw lyric text into normalised word tokens.
package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenize splits raw text on whitespace, lowercases every word and trims
// punctuation from word boundaries. Apostrophes inside a word are kept, so
// "Don't" becomes "don't" while "'cause" becomes "cause".
func Tokenize(raw string) Document {
	fields := strings.FieldsFunc(raw, unicode.IsSpace)
	if len(fields) == 0 {
		return Document{}
	}
	doc := make(Document, 0, len(fields))
	for _, f := range fields {
		if tok, ok := normalizeWord(f); ok {
			doc = append(doc, tok)
		}
	}
	return doc
}

// TokenizeAll tokenizes each document independently. Documents that yield no
// tokens are left out of the corpus.
func TokenizeAll(docs []string) Corpus {
	corpus := make(Corpus, 0, len(docs))
	for _, raw := range docs {
		doc := Tokenize(raw)
		if len(doc) == 0 {
			continue
		}
		corpus = append(corpus, doc)
	}
	return corpus
}

// Normalize applies the per-word rules of Tokenize to a single word. It
// reports false when nothing is left after trimming.
func Normalize(word string) (Token, bool) {
	return normalizeWord(strings.TrimSpace(word))
}

func normalizeWord(word string) (Token, bool) {
	word = strings.Map(foldApostrophe, word)
	word = strings.TrimFunc(word, isBoundary)
	if word == "" {
		return "", false
	}
	return Token(strings.ToLower(word)), true
}

// foldApostrophe maps typographic single quotes onto the ASCII apostrophe.
func foldApostrophe(r rune) rune {
	switch r {
	case '‘', '’', 'ʼ', '`':
		return '\''
	}
	return r
}

func isBoundary(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
