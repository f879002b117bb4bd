package http

import (
	"errors"
	"log"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"toolbox-api/internal/apperrors"
)

// errorEnvelope is the uniform error body: {"error": "<message>"}.
type errorEnvelope struct {
	Error string `json:"error"`
}

func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return nethttp.StatusBadRequest
	case apperrors.KindUnauthorized, apperrors.KindInvalidToken:
		return nethttp.StatusUnauthorized
	case apperrors.KindForbidden:
		return nethttp.StatusForbidden
	case apperrors.KindNotFound:
		return nethttp.StatusNotFound
	case apperrors.KindConflict:
		return nethttp.StatusConflict
	case apperrors.KindRateLimited:
		return nethttp.StatusTooManyRequests
	default:
		return nethttp.StatusInternalServerError
	}
}

// httpErrorHandler maps the error taxonomy onto status codes. Anything
// unclassified is a 500 with a generic message; the cause is logged,
// never leaked.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := nethttp.StatusInternalServerError
	message := "internal error"

	var appErr *apperrors.Error
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = statusFor(appErr.Kind)
		message = appErr.Message
		if status == nethttp.StatusInternalServerError {
			log.Printf("internal error on %s %s: %v", c.Request().Method, c.Request().URL.Path, appErr.Err)
			message = "internal error"
		}
	case errors.As(err, &echoErr):
		status = echoErr.Code
		if m, ok := echoErr.Message.(string); ok {
			message = m
		} else {
			message = nethttp.StatusText(status)
		}
	default:
		log.Printf("internal error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if writeErr := c.JSON(status, errorEnvelope{Error: message}); writeErr != nil {
		log.Printf("failed to write error response: %v", writeErr)
	}
}
