package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/backend"
	"github.com/wangishop/storefront/internal/cart"
	"github.com/wangishop/storefront/internal/config"
	"github.com/wangishop/storefront/internal/domain"
	"github.com/wangishop/storefront/pkg/errors"
)

func TestShippingFee(t *testing.T) {
	assert.Equal(t, int64(5000), ShippingFee(domain.PaymentMethodCOD))
	assert.Equal(t, int64(0), ShippingFee(domain.PaymentMethodBankMandiri))
	assert.Equal(t, int64(0), ShippingFee(domain.PaymentMethodQRISMandiri))
	// Unknown methods fall back to the COD fee.
	assert.Equal(t, int64(5000), ShippingFee(domain.PaymentMethod("GOPAY")))
}

func seededCart(t *testing.T) *cart.Store {
	t.Helper()
	store := cart.NewStore(cart.NewMemoryStorage(), zap.NewNop())
	store.AddItem(domain.Product{ID: "p1", Name: "Vetiver", Price: 100000, StockAvailable: 5}, 2)
	store.AddItem(domain.Product{ID: "p2", Name: "Oud", Price: 250000, StockAvailable: 3}, 1)
	return store
}

func testAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		FullName:   "Sari Dewi",
		Address:    "Jl. Melati 12",
		City:       "Bandung",
		PostalCode: "40111",
		Phone:      "08123456789",
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	store := cart.NewStore(cart.NewMemoryStorage(), zap.NewNop())
	client := backend.NewClient(config.BackendConfig{BaseURL: "http://backend.invalid"}, zap.NewNop())
	svc := NewService(store, client, zap.NewNop())

	_, err := svc.Submit(context.Background(), testAddress(), domain.PaymentMethodCOD, "")

	require.Error(t, err)
	_, ok := err.(*errors.ErrEmptyCart)
	assert.True(t, ok, "expected ErrEmptyCart, got %T", err)
}

func TestSubmitBuildsOrderAndClearsCart(t *testing.T) {
	var gotReq backend.CreateOrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    domain.Order{ID: "o1", Status: domain.OrderStatusPending},
		})
	}))
	defer server.Close()

	store := seededCart(t)
	client := backend.NewClient(config.BackendConfig{BaseURL: server.URL}, zap.NewNop())
	svc := NewService(store, client, zap.NewNop())

	order, err := svc.Submit(context.Background(), testAddress(), domain.PaymentMethodCOD, "ring the bell")
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)

	// Payload mirrors the cart: 2x100000 + 1x250000 plus the COD fee.
	require.Len(t, gotReq.OrderItems, 2)
	assert.Equal(t, int64(450000), gotReq.ItemsPrice)
	assert.Equal(t, int64(5000), gotReq.ShippingPrice)
	assert.Equal(t, int64(455000), gotReq.TotalPrice)
	assert.Equal(t, "ring the bell", gotReq.Notes)
	assert.Equal(t, domain.PaymentMethodCOD, gotReq.PaymentMethod)

	assert.Empty(t, store.Cart().Entries, "cart should be cleared after a successful order")
}

func TestSubmitTransferShipsFree(t *testing.T) {
	var gotReq backend.CreateOrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    domain.Order{ID: "o2", Status: domain.OrderStatusPending},
		})
	}))
	defer server.Close()

	store := seededCart(t)
	client := backend.NewClient(config.BackendConfig{BaseURL: server.URL}, zap.NewNop())
	svc := NewService(store, client, zap.NewNop())

	_, err := svc.Submit(context.Background(), testAddress(), domain.PaymentMethodBankMandiri, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), gotReq.ShippingPrice)
	assert.Equal(t, gotReq.ItemsPrice, gotReq.TotalPrice)
}

func TestSubmitFailureKeepsCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "order rejected"})
	}))
	defer server.Close()

	store := seededCart(t)
	client := backend.NewClient(config.BackendConfig{BaseURL: server.URL}, zap.NewNop())
	svc := NewService(store, client, zap.NewNop())

	_, err := svc.Submit(context.Background(), testAddress(), domain.PaymentMethodCOD, "")

	require.Error(t, err)
	assert.Len(t, store.Cart().Entries, 2, "cart must survive a failed submission")
}
