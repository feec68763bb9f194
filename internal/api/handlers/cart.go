package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/cart"
	"github.com/wangishop/storefront/internal/domain"
)

// AddItemRequest carries the product snapshot plus the requested
// quantity. The snapshot comes from catalog data the page already
// fetched; the cart never re-fetches it.
type AddItemRequest struct {
	Product  domain.Product `json:"product" binding:"required"`
	Quantity int            `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest sets an entry's quantity. Zero and negative
// values are deliberately accepted by the binding and handled as no-ops
// by the store; removal goes through the DELETE route.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart snapshot plus an optional advisory notice
type CartResponse struct {
	Cart   domain.Cart `json:"cart"`
	Notice string      `json:"notice,omitempty"`
}

// notice renders an advisory event as UI feedback text. Events are
// observational; they never change the response status.
func notice(event cart.Event) string {
	switch event.Kind {
	case cart.EventStockLimitReached:
		return fmt.Sprintf("only %d available in stock", event.Quantity)
	case cart.EventItemAdded:
		return "item added to cart"
	case cart.EventQuantityUpdated:
		return "cart quantity updated"
	case cart.EventItemRemoved:
		return "item removed from cart"
	case cart.EventCartCleared:
		return "cart has been cleared"
	default:
		return ""
	}
}

// HandleGetCart handles GET /api/cart
func HandleGetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, CartResponse{Cart: store.Cart()})
	}
}

// HandleAddItem handles POST /api/cart/items
func HandleAddItem(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if req.Product.ID == "" || req.Product.Price < 0 || req.Product.StockAvailable < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": "invalid product snapshot",
			})
			return
		}

		updated, event := store.AddItem(req.Product, req.Quantity)
		c.JSON(http.StatusOK, CartResponse{Cart: updated, Notice: notice(event)})
	}
}

// HandleUpdateQuantity handles PUT /api/cart/items/:id
func HandleUpdateQuantity(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		updated, event := store.UpdateQuantity(c.Param("id"), req.Quantity)
		c.JSON(http.StatusOK, CartResponse{Cart: updated, Notice: notice(event)})
	}
}

// HandleRemoveItem handles DELETE /api/cart/items/:id
func HandleRemoveItem(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		updated, event := store.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, CartResponse{Cart: updated, Notice: notice(event)})
	}
}

// HandleClearCart handles DELETE /api/cart
func HandleClearCart(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		updated, event := store.Clear()
		c.JSON(http.StatusOK, CartResponse{Cart: updated, Notice: notice(event)})
	}
}
