package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/config"
	"github.com/wangishop/storefront/internal/domain"
	"github.com/wangishop/storefront/pkg/errors"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(config.BackendConfig{BaseURL: server.URL + "/"}, zap.NewNop())
	return client, server
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < 300,
		"data":    data,
	})
}

func TestListProducts(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("featured"))
		writeEnvelope(w, http.StatusOK, []domain.Product{
			{ID: "p1", Name: "Amber Noir", Price: 150000, StockAvailable: 4, IsFeatured: true},
		})
	}))
	defer server.Close()

	products, err := client.ListProducts(context.Background(), ProductFilter{Featured: true})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, int64(150000), products[0].Price)
}

func TestGetProductNotFound(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "product not found"})
	}))
	defer server.Close()

	_, err := client.GetProduct(context.Background(), "ghost")
	require.Error(t, err)
	notFound, ok := err.(*errors.ErrNotFound)
	require.True(t, ok, "expected ErrNotFound, got %T", err)
	assert.Equal(t, "product", notFound.Resource)
	assert.Equal(t, "ghost", notFound.ID)
}

func TestTokenSentAndClearedOn401(t *testing.T) {
	var sawAuth string
	calls := 0
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		sawAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "token expired"})
	}))
	defer server.Close()

	client.SetToken("stale-token")
	_, err := client.Profile(context.Background())

	require.Error(t, err)
	_, ok := err.(*errors.ErrUnauthorized)
	require.True(t, ok, "expected ErrUnauthorized, got %T", err)
	assert.Equal(t, "Bearer stale-token", sawAuth)
	// The stale token is dropped so later calls start clean.
	assert.Empty(t, client.Token())
	assert.Equal(t, 1, calls)
}

func TestLoginInstallsToken(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "sari@example.com", payload["email"])

		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"id":    "u1",
			"name":  "Sari",
			"email": "sari@example.com",
			"token": "fresh-token",
		})
	}))
	defer server.Close()

	user, err := client.Login(context.Background(), "sari@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "fresh-token", client.Token())
}

func TestCreateOrderCarriesIdempotencyKey(t *testing.T) {
	var gotKey string
	var gotReq CreateOrderRequest
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		writeEnvelope(w, http.StatusOK, domain.Order{ID: "o1", Status: domain.OrderStatusPending, TotalPrice: gotReq.TotalPrice})
	}))
	defer server.Close()

	order, err := client.CreateOrder(context.Background(), CreateOrderRequest{
		OrderItems:    []domain.OrderItem{{ProductID: "p1", Quantity: 2, Price: 100000}},
		PaymentMethod: domain.PaymentMethodCOD,
		ItemsPrice:    200000,
		ShippingPrice: 5000,
		TotalPrice:    205000,
	})

	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	_, parseErr := uuid.Parse(gotKey)
	assert.NoError(t, parseErr, "Idempotency-Key should be a uuid, got %q", gotKey)
	assert.Equal(t, int64(205000), gotReq.TotalPrice)
}

func TestBackendFailureSurfacesTypedError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "database down"})
	}))
	defer server.Close()

	_, err := client.ListProducts(context.Background(), ProductFilter{})
	require.Error(t, err)
	backendErr, ok := err.(*errors.ErrBackend)
	require.True(t, ok, "expected ErrBackend, got %T", err)
	assert.Equal(t, http.StatusInternalServerError, backendErr.StatusCode)
	assert.Contains(t, backendErr.Message, "database down")
}

func TestSuccessFalseIsAnError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "validation failed"})
	}))
	defer server.Close()

	_, err := client.ListProducts(context.Background(), ProductFilter{})
	require.Error(t, err)
	backendErr, ok := err.(*errors.ErrBackend)
	require.True(t, ok)
	assert.Equal(t, "validation failed", backendErr.Message)
}

func TestUpdateOrderStatus(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/admin/orders/o1/status", r.URL.Path)
		writeEnvelope(w, http.StatusOK, domain.Order{ID: "o1", Status: domain.OrderStatusProcessing})
	}))
	defer server.Close()

	order, err := client.UpdateOrderStatus(context.Background(), "o1", domain.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
}
