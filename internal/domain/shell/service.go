// internal/domain/shell/service.go
package shell

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fifi-bags/storefront-backend/internal/config"
)

// View is a top-level page of the storefront
type View string

const (
	ViewHome  View = "HOME"
	ViewShop  View = "SHOP"
	ViewAbout View = "ABOUT"
	ViewAdmin View = "ADMIN"
)

// ToastType is the severity of a transient notification
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
)

// Toast is a transient notification. At most one is visible per session; a
// new toast replaces the current one and it self-expires after a fixed
// display duration.
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      ToastType `json:"type"`
	ExpiresAt time.Time `json:"expires_at"`
}

type sessionState struct {
	view  View
	toast *Toast
}

// Service holds per-session view selection and the single-slot toast channel
type Service struct {
	mu       sync.Mutex
	sessions map[string]*sessionState
	duration time.Duration
}

// NewService creates a new shell service
func NewService(cfg *config.Config) *Service {
	return &Service{
		sessions: make(map[string]*sessionState),
		duration: cfg.Notifications.ToastDuration,
	}
}

func (s *Service) session(sessionID string) *sessionState {
	state, ok := s.sessions[sessionID]
	if !ok {
		state = &sessionState{view: ViewHome}
		s.sessions[sessionID] = state
	}
	return state
}

// View returns the session's current view, defaulting to HOME
func (s *Service) View(sessionID string) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(sessionID).view
}

// SetView selects the session's current view
func (s *Service) SetView(sessionID string, view View) {
	s.mu.Lock()
	s.session(sessionID).view = view
	s.mu.Unlock()
}

// Notify replaces the session's toast
func (s *Service) Notify(sessionID, message string, toastType ToastType) *Toast {
	toast := &Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      toastType,
		ExpiresAt: time.Now().UTC().Add(s.duration),
	}

	s.mu.Lock()
	s.session(sessionID).toast = toast
	s.mu.Unlock()

	return toast
}

// Success emits a success toast
func (s *Service) Success(sessionID, message string) { s.Notify(sessionID, message, ToastSuccess) }

// Error emits an error toast
func (s *Service) Error(sessionID, message string) { s.Notify(sessionID, message, ToastError) }

// Info emits an info toast
func (s *Service) Info(sessionID, message string) { s.Notify(sessionID, message, ToastInfo) }

// CurrentToast returns the session's live toast, or nil once it has expired
func (s *Service) CurrentToast(sessionID string) *Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.session(sessionID)
	if state.toast == nil || time.Now().UTC().After(state.toast.ExpiresAt) {
		state.toast = nil
		return nil
	}
	return state.toast
}
