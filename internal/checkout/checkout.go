package checkout

import (
	"context"

	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/backend"
	"github.com/wangishop/storefront/internal/cart"
	"github.com/wangishop/storefront/internal/domain"
	"github.com/wangishop/storefront/pkg/errors"
)

// codShippingFee is the courier fee in Rupiah for cash-on-delivery orders
const codShippingFee = 5000

// ShippingFee returns the flat delivery fee for a payment method. Bank
// and QRIS transfers ship free; anything else pays the COD courier fee.
func ShippingFee(method domain.PaymentMethod) int64 {
	switch method {
	case domain.PaymentMethodBankMandiri, domain.PaymentMethodQRISMandiri:
		return 0
	default:
		return codShippingFee
	}
}

type checkoutService struct {
	cart    *cart.Store
	backend *backend.Client
	logger  *zap.Logger
}

// NewService creates a new checkout service
func NewService(cartStore *cart.Store, client *backend.Client, logger *zap.Logger) *checkoutService {
	return &checkoutService{
		cart:    cartStore,
		backend: client,
		logger:  logger,
	}
}

// Submit places an order for the current cart contents. The items price
// is the cart's total, the shipping fee follows the payment method, and
// the cart is cleared only after the backend accepts the order; a failed
// submission leaves the cart untouched.
func (s *checkoutService) Submit(
	ctx context.Context,
	address domain.ShippingAddress,
	method domain.PaymentMethod,
	notes string,
) (*domain.Order, error) {
	snapshot := s.cart.Cart()
	if len(snapshot.Entries) == 0 {
		return nil, &errors.ErrEmptyCart{}
	}

	items := make([]domain.OrderItem, 0, len(snapshot.Entries))
	for _, entry := range snapshot.Entries {
		items = append(items, domain.OrderItem{
			ProductID: entry.Product.ID,
			Quantity:  entry.Quantity,
			Price:     entry.Product.Price,
		})
	}

	fee := ShippingFee(method)
	req := backend.CreateOrderRequest{
		OrderItems:      items,
		ShippingAddress: address,
		PaymentMethod:   method,
		ItemsPrice:      snapshot.TotalPrice,
		ShippingPrice:   fee,
		TotalPrice:      snapshot.TotalPrice + fee,
		Notes:           notes,
	}

	order, err := s.backend.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cart.Clear()

	s.logger.Info("Order submitted",
		zap.String("order_id", order.ID),
		zap.String("payment_method", string(method)),
		zap.Int64("total_price", req.TotalPrice),
	)

	return order, nil
}
