// Package api exposes the songwriter service over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/songsmith/internal/logger"
	"github.com/samcharles93/songsmith/internal/metrics"
	"github.com/samcharles93/songsmith/internal/ngram"
	"github.com/samcharles93/songsmith/internal/songwriter"
	"github.com/samcharles93/songsmith/internal/version"
)

// Songwriter is the service the handlers delegate to.
type Songwriter interface {
	Train(ctx context.Context, mode ngram.Mode) songwriter.TrainResult
	Generate(ctx context.Context, req songwriter.GenerateRequest) songwriter.GenerateResult
	Status() []songwriter.ModelStatus
	DefaultMaxTokens() int
}

type Server struct {
	service Songwriter
	log     logger.Logger
}

func NewServer(service Songwriter, log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{
		service: service,
		log:     log.With("component", "api"),
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/api/train", s.handleTrain)
	e.POST("/api/generate", s.handleGenerate)
	e.GET("/api/models", s.handleModels)
	e.GET("/api/version", s.handleVersion)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}

func (s *Server) context(c *echo.Context) context.Context {
	return logger.WithContext(c.Request().Context(), s.log)
}

func (s *Server) handleTrain(c *echo.Context) error {
	req, err := decodeJSON[TrainRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err)
	}
	mode, err := req.resolve()
	if err != nil {
		return writeBadRequest(c, err)
	}

	res := s.service.Train(s.context(c), mode)
	if res.Err != nil {
		return writeError(c, statusFor(res.Err), res.Message)
	}
	return c.JSON(http.StatusOK, TrainResponse{
		Success: true,
		Mode:    mode,
		Message: res.Message,
		Model:   res.Stats,
	})
}

func (s *Server) handleGenerate(c *echo.Context) error {
	req, err := decodeJSON[GenerateRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err)
	}
	mode, err := req.resolve()
	if err != nil {
		return writeBadRequest(c, err)
	}

	genReq := songwriter.GenerateRequest{
		Mode:      mode,
		MaxTokens: s.service.DefaultMaxTokens(),
		Start:     req.Start,
		Seed:      -1,
	}
	if req.MaxTokens != nil {
		genReq.MaxTokens = *req.MaxTokens
	}
	if req.Seed != nil {
		if *req.Seed < 0 {
			return writeBadRequest(c, newInvalidRequest("seed must not be negative"))
		}
		genReq.Seed = *req.Seed
	}

	res := s.service.Generate(s.context(c), genReq)
	if res.Err != nil {
		msg := res.Err.Error()
		if statusFor(res.Err) == http.StatusConflict {
			msg = songwriter.UntrainedMessage
		}
		return writeError(c, statusFor(res.Err), msg)
	}
	tokens := res.Tokens
	if tokens == nil {
		tokens = []string{}
	}
	return c.JSON(http.StatusOK, GenerateResponse{
		Success: true,
		ID:      res.ID,
		Mode:    mode,
		Song:    res.Song,
		Tokens:  tokens,
		Seed:    res.Seed,
	})
}

func (s *Server) handleModels(c *echo.Context) error {
	return c.JSON(http.StatusOK, ModelsResponse{Models: s.service.Status()})
}

func (s *Server) handleVersion(c *echo.Context) error {
	return c.JSON(http.StatusOK, version.Resolve())
}
