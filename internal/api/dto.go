package api

import (
	"errors"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/samcharles93/songsmith/internal/ngram"
	"github.com/samcharles93/songsmith/internal/songwriter"
)

// ModeSelector is embedded in every request that names a model. Mode wins
// over the legacy Unigram toggle sent by the original web client.
type ModeSelector struct {
	Mode    string `json:"mode,omitempty"`
	Unigram *bool  `json:"unigram,omitempty"`
}

func (m ModeSelector) resolve() (ngram.Mode, error) {
	if strings.TrimSpace(m.Mode) != "" {
		mode, err := ngram.ParseMode(m.Mode)
		if err != nil {
			return 0, newInvalidRequest(err.Error())
		}
		return mode, nil
	}
	if m.Unigram != nil {
		return ngram.ModeFromUnigramFlag(*m.Unigram), nil
	}
	return 0, newInvalidRequest(`mode is required ("unigram" or "bigram")`)
}

type TrainRequest struct {
	ModeSelector
}

type GenerateRequest struct {
	ModeSelector
	MaxTokens *int   `json:"max_tokens,omitempty"`
	Start     string `json:"start,omitempty"`
	Seed      *int64 `json:"seed,omitempty"`
}

type TrainResponse struct {
	Success bool                    `json:"success"`
	Mode    ngram.Mode              `json:"mode"`
	Message string                  `json:"message,omitempty"`
	Model   *songwriter.ModelStatus `json:"model,omitempty"`
}

type GenerateResponse struct {
	Success bool       `json:"success"`
	ID      string     `json:"id"`
	Mode    ngram.Mode `json:"mode"`
	Song    string     `json:"song"`
	Tokens  []string   `json:"tokens"`
	Seed    int64      `json:"seed"`
}

type ModelsResponse struct {
	Models []songwriter.ModelStatus `json:"models"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// decodeJSON reads a request body. An empty body decodes to the zero value.
func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		return out, newInvalidRequest("invalid JSON body: " + err.Error())
	}
	return out, nil
}
