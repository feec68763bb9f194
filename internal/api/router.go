package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/api/handlers"
	"github.com/wangishop/storefront/internal/api/middleware"
	"github.com/wangishop/storefront/internal/backend"
	"github.com/wangishop/storefront/internal/cart"
	"github.com/wangishop/storefront/internal/config"
)

// NewRouter creates and configures the Gin router. The cart store is the
// session's single instance, injected here rather than reached through a
// global.
func NewRouter(cfg *config.Config, store *cart.Store, client *backend.Client, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Catalog (proxied to the backend)
		api.GET("/products", handlers.HandleListProducts(client, logger))
		api.GET("/products/:id", handlers.HandleGetProduct(client, logger))

		// Cart (owned locally, persisted to the data dir)
		api.GET("/cart", handlers.HandleGetCart(store))
		api.POST("/cart/items", handlers.HandleAddItem(store, logger))
		api.PUT("/cart/items/:id", handlers.HandleUpdateQuantity(store, logger))
		api.DELETE("/cart/items/:id", handlers.HandleRemoveItem(store, logger))
		api.DELETE("/cart", handlers.HandleClearCart(store, logger))

		// Checkout
		api.POST("/checkout", handlers.HandleCheckout(store, client, logger))

		// Auth passthrough
		api.POST("/auth/login", handlers.HandleLogin(client, logger))
		api.POST("/auth/register", handlers.HandleRegister(client, logger))
		api.GET("/users/profile", handlers.HandleProfile(client, logger))

		// Order history
		api.GET("/orders", handlers.HandleListMyOrders(client, logger))
		api.GET("/orders/:id", handlers.HandleGetOrder(client, logger))

		// Admin console (requires the locally provisioned admin key)
		adminRoutes := api.Group("/admin")
		adminRoutes.Use(middleware.AdminAuth(cfg.Storage.DataDir, logger))
		{
			adminRoutes.GET("/orders", handlers.HandleAdminListOrders(client, logger))
			adminRoutes.PUT("/orders/:id/status", handlers.HandleUpdateOrderStatus(client, logger))
			adminRoutes.POST("/products", handlers.HandleCreateProduct(client, logger))
			adminRoutes.PUT("/products/:id", handlers.HandleUpdateProduct(client, logger))
			adminRoutes.DELETE("/products/:id", handlers.HandleDeleteProduct(client, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
