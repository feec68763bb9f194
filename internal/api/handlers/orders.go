package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/backend"
)

// HandleListMyOrders handles GET /api/orders
func HandleListMyOrders(client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := client.ListMyOrders(c.Request.Context())
		if err != nil {
			respondBackendError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// HandleGetOrder handles GET /api/orders/:id
func HandleGetOrder(client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := client.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondBackendError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}
