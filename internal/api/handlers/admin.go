package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/backend"
	"github.com/wangishop/storefront/internal/domain"
	"github.com/wangishop/storefront/pkg/errors"
)

// UpdateOrderStatusRequest moves an order to a new status
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

// ProductRequest carries product fields for admin create/update
type ProductRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Price          int64  `json:"price" binding:"min=0"`
	StockAvailable int    `json:"stockAvailable" binding:"min=0"`
	Image          string `json:"image"`
	Category       string `json:"category"`
	IsFeatured     bool   `json:"isFeatured"`
}

func (r ProductRequest) toInput() backend.ProductInput {
	return backend.ProductInput{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		StockAvailable: r.StockAvailable,
		Image:          r.Image,
		Category:       r.Category,
		IsFeatured:     r.IsFeatured,
	}
}

// HandleAdminListOrders handles GET /api/admin/orders
func HandleAdminListOrders(client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		statusStr := c.Query("status")
		limitStr := c.DefaultQuery("limit", "50")
		offsetStr := c.DefaultQuery("offset", "0")

		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 100 {
			limit = 50
		}

		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			offset = 0
		}

		var status domain.OrderStatus
		if statusStr != "" {
			status = domain.OrderStatus(statusStr)
			if !status.IsValid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
				return
			}
		}

		orders, err := client.ListOrders(c.Request.Context(), status, limit, offset)
		if err != nil {
			respondBackendError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"limit":  limit,
			"offset": offset,
		})
	}
}

// HandleUpdateOrderStatus handles PUT /api/admin/orders/:id/status.
// The transition is validated against the current order before the
// backend is asked to apply it.
func HandleUpdateOrderStatus(client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if !req.Status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}

		orderID := c.Param("id")
		order, err := client.GetOrder(c.Request.Context(), orderID)
		if err != nil {
			respondBackendError(c, logger, err)
			return
		}

		if !order.Status.CanTransitionTo(req.Status) {
			transitionErr := &errors.ErrInvalidStateTransition{
				From: string(order.Status),
				To:   string(req.Status),
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": transitionErr.Error()})
			return
		}

		updated, err := client.UpdateOrderStatus(c.Request.Context(), orderID, req.Status)
		if err != nil {
			respondBackendError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":     updated.ID,
			"status": updated.Status,
		})
	}
}

// HandleCreateProduct handles POST /api/admin/products
func HandleCreateProduct(client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product, err := client.CreateProduct(c.Request.Context(), req.toInput())
		if err != nil {
			respondBackendError(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"product": product})
	}
}

// HandleUpdateProduct handles PUT /api/admin/products/:id
func HandleUpdateProduct(client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product, err := client.UpdateProduct(c.Request.Context(), c.Param("id"), req.toInput())
		if err != nil {
			respondBackendError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

// HandleDeleteProduct handles DELETE /api/admin/products/:id
func HandleDeleteProduct(client *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := client.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
			respondBackendError(c, logger, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
