package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/backend"
	"github.com/wangishop/storefront/internal/cart"
	"github.com/wangishop/storefront/internal/checkout"
	"github.com/wangishop/storefront/internal/domain"
	"github.com/wangishop/storefront/pkg/errors"
)

// CheckoutRequest carries everything the order needs beyond the cart
type CheckoutRequest struct {
	ShippingAddress domain.ShippingAddress `json:"shippingAddress" binding:"required"`
	PaymentMethod   domain.PaymentMethod   `json:"paymentMethod" binding:"required"`
	Notes           string                 `json:"notes"`
}

// CheckoutResponse reports the created order
type CheckoutResponse struct {
	Order *domain.Order `json:"order"`
}

// HandleCheckout handles POST /api/checkout
func HandleCheckout(store *cart.Store, client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if !req.PaymentMethod.IsValid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": "unknown payment method",
			})
			return
		}

		addr := req.ShippingAddress
		if addr.FullName == "" || addr.Address == "" || addr.City == "" || addr.PostalCode == "" || addr.Phone == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": "incomplete shipping address",
			})
			return
		}

		checkoutService := checkout.NewService(store, client, logger)
		order, err := checkoutService.Submit(c.Request.Context(), addr, req.PaymentMethod, req.Notes)
		if err != nil {
			if _, ok := err.(*errors.ErrEmptyCart); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
				return
			}
			respondBackendError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, CheckoutResponse{Order: order})
	}
}
