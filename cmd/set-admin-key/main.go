package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/wangishop/storefront/internal/api/middleware"
	"github.com/wangishop/storefront/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/set-admin-key/main.go <admin-key>")
		fmt.Println("Example: go run cmd/set-admin-key/main.go \"wangi-admin-12345\"")
		os.Exit(1)
	}

	adminKey := os.Args[1]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Hash the admin key
	keyHash, err := bcrypt.GenerateFromPassword([]byte(adminKey), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash admin key: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	path := middleware.AdminKeyPath(cfg.Storage.DataDir)
	if err := os.WriteFile(path, keyHash, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write admin key hash: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Admin key provisioned!\n\n")
	fmt.Printf("Hash stored at: %s\n", path)
	fmt.Printf("\n⚠️  IMPORTANT: Save the key securely! Only the hash is kept on disk.\n")
	fmt.Printf("\nUse the key on admin routes in the Authorization header:\n")
	fmt.Printf("Authorization: Bearer %s\n", adminKey)
}
