package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reviewhub/internal/api/apperr"
)

// respondError maps service errors onto HTTP statuses. The "kind" field
// lets clients tell apart errors that share a status code.
func respondError(c *gin.Context, err error) {
	var verr *apperr.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg, "kind": "validation"})
	case errors.Is(err, apperr.ErrReviewExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "review_exists"})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "invalid_credentials"})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "kind": "not_found"})
	case errors.Is(err, apperr.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "kind": "permission_denied"})
	case errors.Is(err, apperr.ErrProtected):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "kind": "protected"})
	case errors.Is(err, apperr.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "kind": "conflict"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parsePagination reads page/page_size query params with sane caps.
func parsePagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if parsed, err := strconv.Atoi(ps); err == nil && parsed > 0 && parsed <= 100 {
			pageSize = parsed
		}
	}
	return page, pageSize
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name, "kind": "validation"})
		return 0, false
	}
	return id, true
}
