package middleware

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminKeyFile is the name of the bcrypt-hashed admin key in the data
// directory, provisioned by cmd/set-admin-key.
const AdminKeyFile = "admin_key_hash"

// AdminKeyPath returns where the admin key hash lives under dataDir
func AdminKeyPath(dataDir string) string {
	return filepath.Join(dataDir, AdminKeyFile)
}

// AdminAuth guards the admin console routes. The caller presents the
// admin key as a bearer token; it is verified against the bcrypt hash at
// rest. An unprovisioned key locks the admin routes entirely.
func AdminAuth(dataDir string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		key := strings.TrimPrefix(header, "Bearer ")
		if key == "" || key == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		hash, err := os.ReadFile(AdminKeyPath(dataDir))
		if err != nil {
			logger.Warn("Admin key not provisioned", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if err := bcrypt.CompareHashAndPassword(bytes.TrimSpace(hash), []byte(key)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}
