package songwriter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samcharles93/songsmith/internal/tokenizer"
)

// Layout controls how a token sequence is laid out as song text.
type Layout struct {
	WordsPerLine   int
	LinesPerStanza int
}

// DefaultLayout is 8 words per line, 4 lines per stanza.
var DefaultLayout = Layout{WordsPerLine: 8, LinesPerStanza: 4}

// Format joins tokens into lines separated by "\n", with a blank line
// between stanzas. The first word of each line and the pronoun "i" (with
// its contractions) are capitalised.
func Format(tokens []tokenizer.Token, layout Layout) string {
	if len(tokens) == 0 {
		return ""
	}
	if layout.WordsPerLine <= 0 {
		layout.WordsPerLine = DefaultLayout.WordsPerLine
	}

	var b strings.Builder
	line := 0
	for start := 0; start < len(tokens); start += layout.WordsPerLine {
		end := min(start+layout.WordsPerLine, len(tokens))
		if line > 0 {
			b.WriteByte('\n')
			if layout.LinesPerStanza > 0 && line%layout.LinesPerStanza == 0 {
				b.WriteByte('\n')
			}
		}
		for i, tok := range tokens[start:end] {
			word := string(tok)
			if i > 0 {
				b.WriteByte(' ')
			}
			if i == 0 || isFirstPerson(word) {
				word = capitalize(word)
			}
			b.WriteString(word)
		}
		line++
	}
	return b.String()
}

func isFirstPerson(word string) bool {
	return word == "i" || strings.HasPrefix(word, "i'")
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
