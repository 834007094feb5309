// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// respondError maps a service error to an HTTP response. Errors whose
// message is safe for end users are surfaced verbatim; everything else is
// logged and replaced with the fallback message.
func respondError(c *gin.Context, logger *logrus.Logger, err error, fallback string) {
	if apperrors.IsUserSafe(err) {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"path":       c.Request.URL.Path,
		"request_id": c.GetString("request_id"),
	}).Error(fallback)

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": fallback,
	})
}

// statusForError picks the HTTP status for a user-safe error
func statusForError(err error) int {
	var notFound *apperrors.NotFoundError
	var unauthorized *apperrors.UnauthorizedError
	switch {
	case errors.As(err, &notFound), errors.Is(err, apperrors.ErrItemNotFound):
		return http.StatusNotFound
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrDuplicateReturn), errors.Is(err, apperrors.ErrAllItemsReviewed):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
