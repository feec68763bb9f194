package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/wangishop/storefront/internal/domain"
	"github.com/wangishop/storefront/pkg/errors"
)

// CreateOrderRequest is the order payload posted at checkout
type CreateOrderRequest struct {
	OrderItems      []domain.OrderItem     `json:"orderItems"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   domain.PaymentMethod   `json:"paymentMethod"`
	ItemsPrice      int64                  `json:"itemsPrice"`
	ShippingPrice   int64                  `json:"shippingPrice"`
	TotalPrice      int64                  `json:"totalPrice"`
	Notes           string                 `json:"notes,omitempty"`
}

// CreateOrder submits an order. Each submission carries a fresh
// idempotency key so a retried request cannot create a duplicate order.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	headers := map[string]string{
		"Idempotency-Key": uuid.NewString(),
	}

	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &order, headers); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder fetches one of the authenticated user's orders
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id), nil, &order, nil); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, &errors.ErrNotFound{Resource: "order", ID: id}
		}
		return nil, err
	}
	return &order, nil
}

// ListMyOrders fetches the authenticated user's order history
func (c *Client) ListMyOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders, nil); err != nil {
		return nil, err
	}
	return orders, nil
}
