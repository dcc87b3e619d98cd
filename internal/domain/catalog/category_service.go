// internal/domain/catalog/category_service.go
package catalog

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/fifi-bags/storefront-backend/internal/infrastructure/persistence"
)

// CategoryService handles the category label set. Deleting a category does
// not cascade to products that reference it; stale references are an
// accepted property of the catalog.
type CategoryService struct {
	mu     sync.RWMutex
	labels []string
	store  persistence.Store
}

// NewCategoryService creates a new category service seeded from the stored snapshot
func NewCategoryService(store persistence.Store) *CategoryService {
	s := &CategoryService{store: store}

	s.labels = DefaultCategories()
	if data, err := store.Load(context.Background(), persistence.KeyCategories); err == nil {
		var labels []string
		if err := json.Unmarshal(data, &labels); err != nil {
			logrus.WithError(err).Warn("Discarding unparseable category snapshot")
		} else {
			s.labels = labels
		}
	}

	return s
}

// List returns a copy of the category labels in insertion order
func (s *CategoryService) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Add appends a label. Adding an existing label (case-sensitive exact
// match) is a silent no-op; the returned bool reports whether the set changed.
func (s *CategoryService) Add(label string) bool {
	s.mu.Lock()
	if lo.Contains(s.labels, label) {
		s.mu.Unlock()
		return false
	}
	s.labels = append(s.labels, label)
	s.mu.Unlock()

	s.persist()
	return true
}

// Delete removes a label regardless of whether any product still references it
func (s *CategoryService) Delete(label string) {
	s.mu.Lock()
	s.labels = lo.Reject(s.labels, func(l string, _ int) bool {
		return l == label
	})
	s.mu.Unlock()

	s.persist()
}

func (s *CategoryService) persist() {
	s.mu.RLock()
	data, err := json.Marshal(s.labels)
	s.mu.RUnlock()

	if err == nil {
		err = s.store.Save(context.Background(), persistence.KeyCategories, data)
	}
	if err != nil {
		logrus.WithError(err).Warn("Failed to persist category snapshot")
	}
}
