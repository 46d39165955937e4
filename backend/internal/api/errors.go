package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	apperrors "socialgraph/backend/pkg/errors"
)

// statusFor maps graph error kinds to HTTP status codes
func statusFor(err error) int {
	switch {
	case apperrors.IsUnknownIdentifier(err), apperrors.IsPostNotFound(err):
		return http.StatusNotFound
	case apperrors.IsDuplicateIdentifier(err):
		return http.StatusConflict
	case apperrors.IsErrorType(err, apperrors.ErrorTypeValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}

	var kind apperrors.ErrorType
	var typed interface{ Base() *apperrors.BaseError }
	if errors.As(err, &typed) {
		kind = typed.Base().Type
	}
	c.JSON(status, gin.H{"error": err.Error(), "type": kind})
}
