// Package songwriter ties a corpus, the tokenizer and the model registry
// together behind the train and generate operations offered to callers.
package songwriter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/samcharles93/songsmith/internal/corpus"
	"github.com/samcharles93/songsmith/internal/logger"
	"github.com/samcharles93/songsmith/internal/metrics"
	"github.com/samcharles93/songsmith/internal/ngram"
	"github.com/samcharles93/songsmith/internal/sampler"
	"github.com/samcharles93/songsmith/internal/tokenizer"
)

// UntrainedMessage is shown when generation is requested before training.
const UntrainedMessage = "train the corresponding model first"

// ErrInvalidRequest marks caller mistakes such as a negative token budget.
var ErrInvalidRequest = errors.New("invalid request")

// Config holds service defaults.
type Config struct {
	Layout Layout
	// DefaultMaxTokens is used by callers that do not pick a length.
	DefaultMaxTokens int
	// MaxTokensLimit rejects requests above it. Zero means no limit.
	MaxTokensLimit int
}

// DefaultConfig returns the defaults used by the CLI and server.
func DefaultConfig() Config {
	return Config{
		Layout:           DefaultLayout,
		DefaultMaxTokens: 64,
		MaxTokensLimit:   4096,
	}
}

type TrainResult struct {
	Success bool
	Message string
	Err     error
	Stats   *ModelStatus
}

type GenerateRequest struct {
	Mode      ngram.Mode
	MaxTokens int
	// Start is normalised with the tokenizer before lookup.
	Start string
	// Seed < 0 picks a time-based seed.
	Seed int64
}

type GenerateResult struct {
	Success bool
	ID      string
	Song    string
	Tokens  []string
	Seed    int64
	Err     error
}

// ModelStatus describes the current model of one mode.
type ModelStatus struct {
	Mode       ngram.Mode `json:"mode"`
	Trained    bool       `json:"trained"`
	Vocabulary int        `json:"vocabulary"`
	Tokens     uint64     `json:"tokens"`
	Contexts   int        `json:"contexts,omitempty"`
	TrainedAt  *time.Time `json:"trained_at,omitempty"`
}

type Service struct {
	store    corpus.Store
	registry *ngram.Registry
	cfg      Config
	newID    func() string
}

func NewService(store corpus.Store, registry *ngram.Registry, cfg Config) *Service {
	if registry == nil {
		registry = ngram.NewRegistry()
	}
	if cfg.DefaultMaxTokens <= 0 {
		cfg.DefaultMaxTokens = DefaultConfig().DefaultMaxTokens
	}
	metrics.Register()
	return &Service{
		store:    store,
		registry: registry,
		cfg:      cfg,
		newID:    func() string { return "song_" + uuid.NewString() },
	}
}

// DefaultMaxTokens is the length used when a caller does not pick one.
func (s *Service) DefaultMaxTokens() int {
	return s.cfg.DefaultMaxTokens
}

// Train tokenizes the current corpus and replaces the model for mode.
func (s *Service) Train(ctx context.Context, mode ngram.Mode) TrainResult {
	log := logger.FromContext(ctx).With("mode", mode.String())

	res := s.train(ctx, mode)
	if res.Err != nil {
		metrics.RecordTraining(mode.String(), errorClass(res.Err))
		log.Warn("training failed", "error", res.Err)
		return res
	}
	metrics.RecordTraining(mode.String(), "success")
	metrics.RecordModel(mode.String(), res.Stats.Vocabulary, res.Stats.Tokens)
	log.Info("model trained", "vocabulary", res.Stats.Vocabulary, "tokens", res.Stats.Tokens)
	return res
}

func (s *Service) train(ctx context.Context, mode ngram.Mode) TrainResult {
	if !mode.Valid() {
		return failTrain(&ngram.InvalidModeError{Value: mode.String()})
	}
	if s.store == nil {
		return failTrain(errors.New("no corpus configured"))
	}
	docs, err := s.store.Documents(ctx)
	if err != nil {
		return failTrain(fmt.Errorf("load corpus: %w", err))
	}
	if err := ctx.Err(); err != nil {
		return failTrain(err)
	}
	model, err := s.registry.Train(tokenizer.TokenizeAll(docs), mode)
	if err != nil {
		return failTrain(err)
	}
	if err := s.registry.Persist(model); err != nil {
		logger.FromContext(ctx).Warn("could not persist model", "mode", mode.String(), "error", err)
	}
	stats := statusOf(mode, model)
	return TrainResult{
		Success: true,
		Message: fmt.Sprintf("%s model trained on %d tokens (%d distinct)", titleMode(mode), stats.Tokens, stats.Vocabulary),
		Stats:   &stats,
	}
}

func failTrain(err error) TrainResult {
	msg := err.Error()
	if errors.Is(err, ngram.ErrEmptyCorpus) {
		msg = "no lyrics to train on: the corpus is empty"
	}
	return TrainResult{Message: msg, Err: err}
}

// Generate samples a song from the current model for req.Mode.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) GenerateResult {
	log := logger.FromContext(ctx).With("mode", req.Mode.String())

	res := s.generate(req)
	if res.Err != nil {
		metrics.RecordGeneration(req.Mode.String(), errorClass(res.Err), 0)
		log.Debug("generation failed", "error", res.Err)
		return res
	}
	metrics.RecordGeneration(req.Mode.String(), "success", len(res.Tokens))
	log.Info("song generated", "id", res.ID, "tokens", len(res.Tokens), "seed", res.Seed)
	return res
}

func (s *Service) generate(req GenerateRequest) GenerateResult {
	if req.MaxTokens < 0 {
		return GenerateResult{Err: fmt.Errorf("%w: max_tokens must not be negative", ErrInvalidRequest)}
	}
	if s.cfg.MaxTokensLimit > 0 && req.MaxTokens > s.cfg.MaxTokensLimit {
		return GenerateResult{Err: fmt.Errorf("%w: max_tokens must be at most %d", ErrInvalidRequest, s.cfg.MaxTokensLimit)}
	}
	model, err := s.registry.Model(req.Mode)
	if err != nil {
		return GenerateResult{Err: err}
	}

	var start tokenizer.Token
	if req.Start != "" {
		start, _ = tokenizer.Normalize(req.Start)
	}
	smp := sampler.New(sampler.Config{Seed: req.Seed})
	toks, err := ngram.Generate(model, smp, ngram.Options{MaxTokens: req.MaxTokens, Start: start})
	if err != nil {
		return GenerateResult{Err: err}
	}
	return GenerateResult{
		Success: true,
		ID:      s.newID(),
		Song:    Format(toks, s.cfg.Layout),
		Tokens:  tokenizer.Document(toks).Strings(),
		Seed:    smp.Seed(),
	}
}

// Status reports the current model of every mode.
func (s *Service) Status() []ModelStatus {
	out := make([]ModelStatus, 0, len(ngram.Modes))
	for _, mode := range ngram.Modes {
		model, _ := s.registry.Model(mode)
		out = append(out, statusOf(mode, model))
	}
	return out
}

func statusOf(mode ngram.Mode, model ngram.Model) ModelStatus {
	st := ModelStatus{Mode: mode}
	if model == nil {
		return st
	}
	trainedAt := model.TrainedAt()
	st.Trained = true
	st.Vocabulary = model.Vocabulary().Len()
	st.Tokens = model.Vocabulary().Total()
	st.TrainedAt = &trainedAt
	if bm, ok := model.(*ngram.BigramModel); ok {
		st.Contexts = len(bm.Contexts())
	}
	return st
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, ngram.ErrEmptyCorpus):
		return "empty_corpus"
	case errors.Is(err, ngram.ErrUntrainedModel):
		return "untrained"
	case errors.Is(err, ngram.ErrInvalidMode), errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	default:
		return "error"
	}
}

func titleMode(mode ngram.Mode) string {
	return capitalize(mode.String())
}
