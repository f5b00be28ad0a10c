package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/apperror"
)

// Every response carries the error flag as a real boolean. The observed API
// mixed booleans and the strings "true"/"false" across endpoints; that drift
// is normalized here.

// Fail writes the error envelope with an explicit status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error":   true,
		"message": message,
	})
}

// FailFromError maps a service error onto its fixed status code. Anything
// outside the taxonomy is an internal error: logged server-side, generic
// message to the client.
func FailFromError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		Fail(c, http.StatusBadRequest, messageOf(err, "Invalid request"))
	case errors.Is(err, apperror.ErrConflict):
		Fail(c, http.StatusBadRequest, messageOf(err, "Already exists"))
	case errors.Is(err, apperror.ErrNotFound):
		Fail(c, http.StatusNotFound, messageOf(err, "Not found"))
	case errors.Is(err, apperror.ErrAuthentication):
		Fail(c, http.StatusUnauthorized, messageOf(err, "Authentication failed"))
	default:
		logger.Error("internal error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		Fail(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

// messageOf extracts the human message wrapped around a sentinel, e.g.
// "Title is required: validation error" -> "Title is required".
func messageOf(err error, fallback string) string {
	msg := err.Error()
	for _, sentinel := range []error{
		apperror.ErrValidation,
		apperror.ErrConflict,
		apperror.ErrNotFound,
		apperror.ErrAuthentication,
	} {
		suffix := ": " + sentinel.Error()
		if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
			return msg[:len(msg)-len(suffix)]
		}
	}
	if msg == "" {
		return fallback
	}
	return msg
}
