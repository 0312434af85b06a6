package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/songsmith/internal/ngram"
	"github.com/samcharles93/songsmith/internal/songwriter"
)

var ErrInvalidRequest = errors.New("invalid_request")

type invalidRequestError struct {
	msg string
}

func (e invalidRequestError) Error() string {
	return e.msg
}

func (e invalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

func newInvalidRequest(msg string) error {
	return invalidRequestError{msg: msg}
}

// statusFor maps a service error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ngram.ErrInvalidMode),
		errors.Is(err, songwriter.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ngram.ErrEmptyCorpus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ngram.ErrUntrainedModel):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *echo.Context, status int, msg string) error {
	return c.JSON(status, ErrorResponse{Success: false, Error: msg})
}

func writeBadRequest(c *echo.Context, err error) error {
	return writeError(c, http.StatusBadRequest, err.Error())
}
