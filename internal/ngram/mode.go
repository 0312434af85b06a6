package ngram

import (
	"fmt"
	"strings"
)

// Mode selects the order of the language model.
type Mode int

const (
	Unigram Mode = iota + 1
	Bigram
)

// Modes lists every supported mode in a stable order.
var Modes = []Mode{Unigram, Bigram}

func (m Mode) String() string {
	switch m {
	case Unigram:
		return "unigram"
	case Bigram:
		return "bigram"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	return m == Unigram || m == Bigram
}

// ParseMode converts a mode name ("unigram", "bigram", or "1"/"2") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unigram", "uni", "1":
		return Unigram, nil
	case "bigram", "bi", "2":
		return Bigram, nil
	default:
		return 0, &InvalidModeError{Value: s}
	}
}

// ModeFromUnigramFlag maps the boolean toggle used by the web client
// (true means unigram) onto a Mode.
func ModeFromUnigramFlag(unigram bool) Mode {
	if unigram {
		return Unigram
	}
	return Bigram
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &InvalidModeError{Value: m.String()}
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
