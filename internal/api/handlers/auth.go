package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/backend"
)

// LoginRequest carries the credentials forwarded to the backend
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries new-account details forwarded to the backend
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// HandleLogin handles POST /api/auth/login. The acquired token stays
// inside the backend client for the rest of the session.
func HandleLogin(client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		user, err := client.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondBackendError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// HandleRegister handles POST /api/auth/register
func HandleRegister(client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		user, err := client.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			respondBackendError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// HandleProfile handles GET /api/users/profile
func HandleProfile(client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := client.Profile(c.Request.Context())
		if err != nil {
			respondBackendError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
