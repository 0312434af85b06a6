package ngram

import (
	"errors"
	"strconv"
)

var (
	// ErrEmptyCorpus is returned when training is attempted on a corpus with
	// no tokens.
	ErrEmptyCorpus = errors.New("corpus contains no tokens")
	// ErrUntrainedModel is returned when generation is attempted before the
	// model for the requested mode has been trained.
	ErrUntrainedModel = errors.New("model is not trained")
	// ErrInvalidMode is the sentinel behind every InvalidModeError.
	ErrInvalidMode = errors.New("invalid mode")
)

// InvalidModeError reports a mode outside {unigram, bigram}.
type InvalidModeError struct {
	Value string
}

func (e *InvalidModeError) Error() string {
	return "invalid mode " + strconv.Quote(e.Value) + ": want unigram or bigram"
}

func (e *InvalidModeError) Unwrap() error {
	return ErrInvalidMode
}
