package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/wangishop/storefront/internal/domain"
	"github.com/wangishop/storefront/pkg/errors"
)

// ProductFilter narrows a catalog listing
type ProductFilter struct {
	Category string
	Featured bool
	Search   string
}

// ListProducts fetches the catalog, optionally filtered
func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	path := "/api/products"

	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Featured {
		query.Set("featured", "true")
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, path, nil, &products, nil); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product snapshot by id
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, &product, nil); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, &errors.ErrNotFound{Resource: "product", ID: id}
		}
		return nil, err
	}
	return &product, nil
}
