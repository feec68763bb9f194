package cart

import (
	"sync"

	"github.com/wangishop/storefront/internal/domain"
)

// MemoryStorage holds the snapshot in memory. It backs tests and serves
// as a fallback when no writable data directory is available; the cart
// then simply does not survive a restart.
type MemoryStorage struct {
	mu   sync.Mutex
	cart *domain.Cart
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart == nil {
		return nil, nil
	}
	snapshot := domain.Cart{Entries: append([]domain.CartEntry(nil), s.cart.Entries...)}
	return &snapshot, nil
}

func (s *MemoryStorage) Save(cart domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := domain.Cart{Entries: append([]domain.CartEntry(nil), cart.Entries...)}
	s.cart = &snapshot
	return nil
}

func (s *MemoryStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
	return nil
}
