package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func StatusOf(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond maps any core error onto the JSON error payload.
func Respond(c *gin.Context, err error) {
	var be *BusinessError
	if !errors.As(err, &be) {
		slog.ErrorContext(c.Request.Context(), "unhandled error", "err", err, "path", c.FullPath())
		Internal(c, "internal_error", "Internal Server Error")
		return
	}

	if be.Kind == KindStore || be.Kind == KindUnknown {
		slog.ErrorContext(c.Request.Context(), "store error", "code", be.Code, "err", be.Err, "path", c.FullPath())
	}

	msg := be.Message
	if msg == "" {
		msg = be.Code
	}
	Write(c, StatusOf(be.Kind), be.Code, msg)
}
