// internal/domain/payment/service.go
package payment

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/fifi-bags/storefront-backend/internal/infrastructure/persistence"
)

// Service handles the singleton payment settings record. Checkout reads it;
// only the admin surface writes it.
type Service struct {
	mu       sync.RWMutex
	settings Settings
	store    persistence.Store
}

// NewService creates a new payment settings service seeded from the stored snapshot
func NewService(store persistence.Store) *Service {
	s := &Service{store: store, settings: DefaultSettings()}

	if data, err := store.Load(context.Background(), persistence.KeyPayment); err == nil {
		var settings Settings
		if err := json.Unmarshal(data, &settings); err != nil {
			logrus.WithError(err).Warn("Discarding unparseable payment snapshot")
		} else {
			s.settings = settings
		}
	}

	return s
}

// Get returns the current payment settings
func (s *Service) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update replaces the whole record. No field-level validation.
func (s *Service) Update(settings Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	s.persist()
}

func (s *Service) persist() {
	s.mu.RLock()
	data, err := json.Marshal(s.settings)
	s.mu.RUnlock()

	if err == nil {
		err = s.store.Save(context.Background(), persistence.KeyPayment, data)
	}
	if err != nil {
		logrus.WithError(err).Warn("Failed to persist payment snapshot")
	}
}
