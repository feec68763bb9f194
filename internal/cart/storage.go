package cart

import (
	"github.com/wangishop/storefront/internal/domain"
)

// Storage persists cart snapshots across sessions. Load returns (nil, nil)
// when no snapshot exists; any error is treated by the store as an absent
// snapshot, so a corrupted file degrades to an empty cart rather than a
// startup failure.
type Storage interface {
	Load() (*domain.Cart, error)
	Save(cart domain.Cart) error
	Reset() error
}
