// internal/domain/cart/service.go
package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fifi-bags/storefront-backend/internal/domain/catalog"
)

// ErrSoldOut is returned when a sold-out product is added to the bag
var ErrSoldOut = errors.New("product is sold out")

// Service handles shopping bag business logic. Bags are session-only state
// kept in memory and keyed by session ID; they do not survive a restart.
type Service struct {
	mu   sync.RWMutex
	bags map[string][]Line
}

// NewService creates a new cart service
func NewService() *Service {
	return &Service{
		bags: make(map[string][]Line),
	}
}

// Get returns the bag for a session with its derived total
func (s *Service) Get(sessionID string) *Bag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.bags[sessionID]
	out := make([]Line, len(lines))
	copy(out, lines)

	return &Bag{
		Lines: out,
		Total: total(out),
	}
}

// Add snapshots the product into a new line with a fresh line ID.
// Sold-out products are rejected.
func (s *Service) Add(sessionID string, product catalog.Product) (*Line, error) {
	if product.SoldOut {
		return nil, ErrSoldOut
	}

	line := Line{
		LineID:  uuid.NewString(),
		Product: product,
		AddedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.bags[sessionID] = append(s.bags[sessionID], line)
	s.mu.Unlock()

	return &line, nil
}

// Remove deletes the line with the given ID from the session's bag
func (s *Service) Remove(sessionID, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.bags[sessionID]
	for i := range lines {
		if lines[i].LineID == lineID {
			s.bags[sessionID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// Clear empties the session's bag
func (s *Service) Clear(sessionID string) {
	s.mu.Lock()
	delete(s.bags, sessionID)
	s.mu.Unlock()
}

// Count returns the number of lines in the session's bag
func (s *Service) Count(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bags[sessionID])
}

// Total returns the sum of the snapshot prices in the session's bag.
// It is derived on every call, never stored.
func (s *Service) Total(sessionID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return total(s.bags[sessionID])
}

func total(lines []Line) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.Product.Price
	}
	return sum
}
