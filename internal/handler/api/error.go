package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/saga-books/saga/internal/domain"
)

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewErrorHandler returns the echo error handler: the single place where
// domain error codes become HTTP status codes and response bodies.
func NewErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var status int
		var body ErrorResponse

		var he *echo.HTTPError
		if errors.As(err, &he) {
			// Routing-level errors (404 no route, 405) from echo itself.
			status = he.Code
			body = ErrorResponse{
				Error:   http.StatusText(he.Code),
				Message: fmt.Sprintf("%v", he.Message),
			}
		} else {
			code := domain.ErrorCode(err)
			status = statusFor(code)
			body = ErrorResponse{
				Error:   labelFor(code),
				Message: domain.ErrorMessage(err),
			}
			if code == domain.EINTERNAL {
				logger.Error().Err(err).Str("op", domain.ErrorOp(err)).Msg("internal error")
			}
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			logger.Error().Err(werr).Msg("failed to write error response")
		}
	}
}

func statusFor(code string) int {
	switch code {
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.EINVALID, domain.EOUTOFSTOCK:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func labelFor(code string) string {
	switch code {
	case domain.ENOTFOUND:
		return "Not Found"
	case domain.EINVALID:
		return "Invalid Input"
	case domain.EOUTOFSTOCK:
		return "Out Of Stock"
	default:
		return "Internal Server Error"
	}
}
