package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wangishop/storefront/internal/domain"
	"github.com/wangishop/storefront/pkg/errors"
)

// ProductInput carries the editable product fields for admin CRUD
type ProductInput struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Price          int64  `json:"price"`
	StockAvailable int    `json:"stockAvailable"`
	Image          string `json:"image,omitempty"`
	Category       string `json:"category,omitempty"`
	IsFeatured     bool   `json:"isFeatured"`
}

// CreateProduct adds a product to the catalog
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", input, &product, nil); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces a product's editable fields
func (c *Client) UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), input, &product, nil); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, &errors.ErrNotFound{Resource: "product", ID: id}
		}
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product from the catalog
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil, nil); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return &errors.ErrNotFound{Resource: "product", ID: id}
		}
		return err
	}
	return nil
}

// ListOrders fetches orders across all users, optionally by status
func (c *Client) ListOrders(ctx context.Context, status domain.OrderStatus, limit, offset int) ([]domain.Order, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	query.Set("limit", fmt.Sprintf("%d", limit))
	query.Set("offset", fmt.Sprintf("%d", offset))

	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders?"+query.Encode(), nil, &orders, nil); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to a new status
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	payload := map[string]string{"status": string(status)}

	var order domain.Order
	if err := c.do(ctx, http.MethodPut, "/api/admin/orders/"+url.PathEscape(id)+"/status", payload, &order, nil); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, &errors.ErrNotFound{Resource: "order", ID: id}
		}
		return nil, err
	}
	return &order, nil
}
