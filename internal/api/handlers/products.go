package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/backend"
)

// HandleListProducts handles GET /api/products
func HandleListProducts(client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := backend.ProductFilter{
			Category: c.Query("category"),
			Featured: c.Query("featured") == "true",
			Search:   c.Query("search"),
		}

		products, err := client.ListProducts(c.Request.Context(), filter)
		if err != nil {
			respondBackendError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// HandleGetProduct handles GET /api/products/:id
func HandleGetProduct(client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := client.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondBackendError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}
