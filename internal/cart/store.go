package cart

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/domain"
)

// Store is the single source of truth for the session's shopping cart.
// One instance is created per application session and injected into the
// components that need it; there is no package-level singleton.
//
// Every mutation is atomic: the entry list is updated, totals are
// recomputed from scratch, and the snapshot is persisted before the next
// mutation can start. Mutations never fail from the caller's point of
// view; quantity requests that exceed available stock are clamped and
// reported through an advisory StockLimitReached event, and persistence
// failures leave the in-memory cart authoritative for the session.
type Store struct {
	mu        sync.Mutex
	entries   []domain.CartEntry
	storage   Storage
	logger    *zap.Logger
	listeners []Listener
}

// NewStore creates a cart store, rehydrated from storage when a valid
// snapshot exists. A missing or corrupted snapshot yields an empty cart,
// never an error: recovering a broken cart file is not worth failing
// startup over.
func NewStore(storage Storage, logger *zap.Logger) *Store {
	s := &Store{
		storage: storage,
		logger:  logger,
	}

	restored, err := storage.Load()
	if err != nil {
		logger.Warn("Failed to load cart snapshot, starting with empty cart", zap.Error(err))
		return s
	}
	if restored != nil {
		s.entries = restored.Entries
	}

	return s
}

// Subscribe registers a listener that is notified after each successful
// mutation. Listeners are invoked outside the store's lock.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Cart returns a snapshot of the current cart with freshly computed totals.
func (s *Store) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// AddItem puts quantity units of product into the cart, merging with an
// existing entry for the same product id. Quantities above the product's
// available stock clamp to it and report StockLimitReached. Adding an
// out-of-stock product never creates an entry; if a stale entry exists it
// is dropped. Quantities below 1 are ignored.
func (s *Store) AddItem(product domain.Product, quantity int) (domain.Cart, Event) {
	if quantity < 1 {
		return s.Cart(), Event{}
	}

	s.mu.Lock()

	event := Event{ProductID: product.ID}
	idx := s.indexOf(product.ID)

	switch {
	case product.StockAvailable <= 0:
		if idx >= 0 {
			s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
		}
		event.Kind = EventStockLimitReached

	case idx >= 0:
		next := s.entries[idx].Quantity + quantity
		if next > product.StockAvailable {
			next = product.StockAvailable
			event.Kind = EventStockLimitReached
		} else {
			event.Kind = EventQuantityUpdated
		}
		// Refresh the stored snapshot so the entry's stock bound matches
		// the figure the clamp was made against.
		s.entries[idx] = domain.CartEntry{Product: product, Quantity: next}
		event.Quantity = next

	default:
		if quantity > product.StockAvailable {
			quantity = product.StockAvailable
			event.Kind = EventStockLimitReached
		} else {
			event.Kind = EventItemAdded
		}
		s.entries = append(s.entries, domain.CartEntry{Product: product, Quantity: quantity})
		event.Quantity = quantity
	}

	cart := s.commit()
	s.mu.Unlock()

	s.notify(event)
	return cart, event
}

// UpdateQuantity sets the quantity of an existing entry exactly. Values
// below 1 are ignored; removal must go through RemoveItem. A missing
// entry is a no-op. Requests above available stock clamp and report
// StockLimitReached.
func (s *Store) UpdateQuantity(productID string, quantity int) (domain.Cart, Event) {
	if quantity < 1 {
		return s.Cart(), Event{}
	}

	s.mu.Lock()

	idx := s.indexOf(productID)
	if idx < 0 {
		cart := s.snapshot()
		s.mu.Unlock()
		return cart, Event{}
	}

	event := Event{Kind: EventQuantityUpdated, ProductID: productID}
	if stock := s.entries[idx].Product.StockAvailable; quantity > stock {
		quantity = stock
		event.Kind = EventStockLimitReached
	}
	s.entries[idx].Quantity = quantity
	event.Quantity = quantity

	cart := s.commit()
	s.mu.Unlock()

	s.notify(event)
	return cart, event
}

// RemoveItem deletes the entry for productID. Removing an absent entry is
// a no-op, not an error.
func (s *Store) RemoveItem(productID string) (domain.Cart, Event) {
	s.mu.Lock()

	idx := s.indexOf(productID)
	if idx < 0 {
		cart := s.snapshot()
		s.mu.Unlock()
		return cart, Event{}
	}

	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	event := Event{Kind: EventItemRemoved, ProductID: productID}

	cart := s.commit()
	s.mu.Unlock()

	s.notify(event)
	return cart, event
}

// Clear empties the cart and persists the empty snapshot.
func (s *Store) Clear() (domain.Cart, Event) {
	s.mu.Lock()

	s.entries = nil
	event := Event{Kind: EventCartCleared}

	cart := s.commit()
	s.mu.Unlock()

	s.notify(event)
	return cart, event
}

// snapshot copies the entries and recomputes totals from scratch. Totals
// are always derived this way rather than maintained incrementally, so
// they cannot drift. Callers must hold s.mu.
func (s *Store) snapshot() domain.Cart {
	cart := domain.Cart{
		Entries: append([]domain.CartEntry(nil), s.entries...),
	}
	for _, entry := range s.entries {
		cart.TotalItemCount += entry.Quantity
		cart.TotalPrice += entry.Subtotal()
	}
	return cart
}

// commit recomputes totals and persists the snapshot. A persistence
// failure is logged and swallowed; the in-memory cart stays authoritative
// and the next load simply finds no valid snapshot. Callers must hold s.mu.
func (s *Store) commit() domain.Cart {
	cart := s.snapshot()
	if err := s.storage.Save(cart); err != nil {
		s.logger.Warn("Failed to persist cart snapshot", zap.Error(err))
	}
	return cart
}

// indexOf returns the position of the entry for productID, or -1.
// Callers must hold s.mu.
func (s *Store) indexOf(productID string) int {
	for i, entry := range s.entries {
		if entry.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) notify(event Event) {
	if event.Kind == "" {
		return
	}

	s.mu.Lock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}
