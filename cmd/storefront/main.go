package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wangishop/storefront/internal/api"
	"github.com/wangishop/storefront/internal/backend"
	"github.com/wangishop/storefront/internal/cart"
	"github.com/wangishop/storefront/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Durable client storage for the cart
	storage, err := cart.NewFileStorage(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to open cart storage", zap.Error(err))
	}

	// One cart store per application session, rehydrated from storage
	store := cart.NewStore(storage, logger)
	store.Subscribe(func(event cart.Event) {
		logger.Info("Cart event",
			zap.String("kind", string(event.Kind)),
			zap.String("product_id", event.ProductID),
			zap.Int("quantity", event.Quantity),
		)
	})

	// Backend API client
	client := backend.NewClient(cfg.Backend, logger)

	router := api.NewRouter(cfg, store, client, logger)

	logger.Info("Starting storefront",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("backend", cfg.Backend.BaseURL),
		zap.Int("restored_cart_items", store.Cart().TotalItemCount),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		zapCfg := zap.NewProductionConfig()
		if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
			zapCfg.Level = zap.NewAtomicLevelAt(level)
		}
		return zapCfg.Build()
	}
	return zap.NewDevelopment()
}
