package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/fifi-bags/storefront-backend/internal/config"
	"github.com/fifi-bags/storefront-backend/internal/domain/catalog"
	"github.com/fifi-bags/storefront-backend/internal/domain/payment"
	"github.com/fifi-bags/storefront-backend/internal/infrastructure/persistence"
	redisdb "github.com/fifi-bags/storefront-backend/internal/infrastructure/persistence/redis"
)

// Seeds Redis with the default catalog, category, and payment snapshots.
// Usage: go run scripts/seed_snapshots.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration:", err)
	}

	client, err := redisdb.NewConnection(cfg)
	if err != nil {
		log.Fatal("Error connecting to Redis:", err)
	}
	defer client.Close()

	ctx := context.Background()

	seed := func(key string, value any) {
		data, err := json.Marshal(value)
		if err != nil {
			log.Fatalf("Error encoding %s: %v", key, err)
		}
		if err := client.Save(ctx, key, data); err != nil {
			log.Fatalf("Error writing %s: %v", key, err)
		}
		fmt.Printf("Seeded %s (%d bytes)\n", key, len(data))
	}

	seed(persistence.KeyProducts, catalog.DefaultProducts())
	seed(persistence.KeyCategories, catalog.DefaultCategories())
	seed(persistence.KeyPayment, payment.DefaultSettings())

	fmt.Println("✅ Snapshots seeded successfully!")
}
