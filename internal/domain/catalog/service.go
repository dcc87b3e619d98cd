// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/fifi-bags/storefront-backend/internal/infrastructure/persistence"
)

// Service handles catalog business logic. The product list lives in memory
// and is mirrored to the persistence store as a full JSON snapshot on every
// mutation. A snapshot that is absent or unparseable falls back to the
// built-in defaults.
type Service struct {
	mu       sync.RWMutex
	products []Product
	store    persistence.Store
}

// NewService creates a new catalog service seeded from the stored snapshot
func NewService(store persistence.Store) *Service {
	s := &Service{store: store}
	s.products = loadSnapshot(store, persistence.KeyProducts, DefaultProducts())
	return s
}

func loadSnapshot(store persistence.Store, key string, defaults []Product) []Product {
	data, err := store.Load(context.Background(), key)
	if err != nil {
		return defaults
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		// Treat a corrupt snapshot the same as an absent one
		logrus.WithError(err).Warn("Discarding unparseable catalog snapshot")
		return defaults
	}
	return products
}

// List returns a copy of the full catalog in display order
func (s *Service) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get retrieves a product by ID
func (s *Service) Get(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("product %s not found", id)
}

// Add prepends a product to the catalog
func (s *Service) Add(p Product) {
	s.mu.Lock()
	s.products = append([]Product{p}, s.products...)
	s.mu.Unlock()

	s.persist()
}

// Update replaces the entry whose ID matches, leaving order and all
// non-matching entries untouched
func (s *Service) Update(p Product) {
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			break
		}
	}
	s.mu.Unlock()

	s.persist()
}

// Delete removes the product with the given ID
func (s *Service) Delete(id string) {
	s.mu.Lock()
	s.products = lo.Reject(s.products, func(p Product, _ int) bool {
		return p.ID == id
	})
	s.mu.Unlock()

	s.persist()
}

// Filter returns the products matching a free-text query over name and
// description (case-insensitive substring) AND the category filter.
// The "All" category matches everything.
func (s *Service) Filter(query, category string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	return lo.Filter(s.products, func(p Product, _ int) bool {
		matchesCategory := category == "" || category == AllCategories || p.Category == category
		matchesSearch := needle == "" ||
			strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle)
		return matchesCategory && matchesSearch
	})
}

// persist writes the full catalog snapshot through to storage.
// Write failures are logged and otherwise unobserved by callers.
func (s *Service) persist() {
	s.mu.RLock()
	data, err := json.Marshal(s.products)
	s.mu.RUnlock()

	if err == nil {
		err = s.store.Save(context.Background(), persistence.KeyProducts, data)
	}
	if err != nil {
		logrus.WithError(err).Warn("Failed to persist catalog snapshot")
	}
}

// CoercePrice converts a loosely typed price value from the admin form to a
// number, defaulting to 0 on non-numeric input
func CoercePrice(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
