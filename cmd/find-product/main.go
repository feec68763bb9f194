package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/backend"
	"github.com/wangishop/storefront/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/find-product/main.go <name>")
		fmt.Println("Example: go run cmd/find-product/main.go \"Amber Noir\"")
		os.Exit(1)
	}

	query := strings.Join(os.Args[1:], " ")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := backend.NewClient(cfg.Backend, logger)

	products, err := client.ListProducts(context.Background(), backend.ProductFilter{Search: query})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to search products: %v\n", err)
		os.Exit(1)
	}

	if len(products) == 0 {
		fmt.Printf("No products matching %q\n", query)
		return
	}

	fmt.Printf("Found %d product(s) matching %q:\n\n", len(products), query)
	for _, p := range products {
		fmt.Printf("  %s\n", p.Name)
		fmt.Printf("    ID:       %s\n", p.ID)
		fmt.Printf("    Price:    Rp%d\n", p.Price)
		fmt.Printf("    In stock: %d\n", p.StockAvailable)
		if p.Category != "" {
			fmt.Printf("    Category: %s\n", p.Category)
		}
		fmt.Println()
	}
}
