package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/domain"
)

const snapshotFile = "cart.json"

// snapshot is the persisted cart layout. Only entries are stored; totals
// are derived state and must be recomputed on load.
type snapshot struct {
	Entries []domain.CartEntry `json:"entries"`
}

// FileStorage keeps the cart snapshot as a JSON file in the data
// directory, the durable client storage for this session's cart.
type FileStorage struct {
	path   string
	logger *zap.Logger
}

// NewFileStorage creates a file-backed storage rooted at dataDir
func NewFileStorage(dataDir string, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileStorage{
		path:   filepath.Join(dataDir, snapshotFile),
		logger: logger,
	}, nil
}

func (s *FileStorage) Load() (*domain.Cart, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}

	// A snapshot with structurally invalid entries is treated the same as
	// a malformed one: the whole thing is discarded.
	for _, entry := range snap.Entries {
		if entry.Product.ID == "" || entry.Quantity < 1 || entry.Product.Price < 0 {
			return nil, fmt.Errorf("invalid cart snapshot entry for product %q", entry.Product.ID)
		}
	}

	return &domain.Cart{Entries: snap.Entries}, nil
}

func (s *FileStorage) Save(cart domain.Cart) error {
	data, err := json.Marshal(snapshot{Entries: cart.Entries})
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	// Write-then-rename so a crash mid-write can't leave a truncated
	// snapshot behind.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.logger.Error("Failed to write cart snapshot", zap.Error(err))
		return fmt.Errorf("failed to write cart snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Error("Failed to replace cart snapshot", zap.Error(err))
		return fmt.Errorf("failed to replace cart snapshot: %w", err)
	}

	return nil
}

func (s *FileStorage) Reset() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
