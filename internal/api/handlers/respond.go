package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wangishop/storefront/pkg/errors"
)

// respondBackendError translates a backend client error into an HTTP
// response for the local surface.
func respondBackendError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": e.Error()})
	case *errors.ErrBackend:
		logger.Error("Backend request failed",
			zap.Int("status", e.StatusCode),
			zap.String("message", e.Message),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend request failed"})
	default:
		logger.Error("Unexpected backend error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
