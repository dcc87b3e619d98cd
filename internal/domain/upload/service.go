// internal/domain/upload/service.go
package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/fifi-bags/storefront-backend/internal/config"
)

var (
	// ErrFormClosed rejects an attachment when no product form is open
	ErrFormClosed = errors.New("no product form is open")
	// ErrTooLarge rejects files over the configured size limit
	ErrTooLarge = errors.New("image exceeds the upload size limit")
	// ErrUnsupportedType rejects files outside the allowed image types
	ErrUnsupportedType = errors.New("unsupported image type")
)

type pendingForm struct {
	open    bool
	dataURI string
}

// Service converts image attachments for the admin product form into inline
// data URIs. Each session has one slot: the conversion is fire-and-forget,
// and its result is applied only if the form is still open when it
// completes. Pasting a URL instead simply overwrites the form field
// client-side; last write wins.
type Service struct {
	mu      sync.Mutex
	forms   map[string]*pendingForm
	maxSize int64
	allowed []string
}

// NewService creates a new upload service
func NewService(cfg *config.Config) *Service {
	return &Service{
		forms:   make(map[string]*pendingForm),
		maxSize: cfg.Upload.MaxSize,
		allowed: cfg.Upload.AllowedExtensions,
	}
}

// OpenForm marks the session's product form as open, discarding any
// attachment left over from a previous edit
func (s *Service) OpenForm(sessionID string) {
	s.mu.Lock()
	s.forms[sessionID] = &pendingForm{open: true}
	s.mu.Unlock()
}

// CloseForm closes the session's form. A conversion still in progress will
// find the form closed and drop its result.
func (s *Service) CloseForm(sessionID string) {
	s.mu.Lock()
	delete(s.forms, sessionID)
	s.mu.Unlock()
}

// Attach reads and converts an uploaded file into a data URI, storing it in
// the session's slot if the form is still open
func (s *Service) Attach(sessionID, filename string, contentType string, r io.Reader) error {
	s.mu.Lock()
	form, ok := s.forms[sessionID]
	s.mu.Unlock()
	if !ok || !form.open {
		return ErrFormClosed
	}

	if !s.allowedExtension(filename) {
		return ErrUnsupportedType
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return ErrTooLarge
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))

	// Apply only if the form is still the one we started with
	s.mu.Lock()
	if current, ok := s.forms[sessionID]; ok && current == form && current.open {
		current.dataURI = dataURI
	}
	s.mu.Unlock()

	return nil
}

// Pending returns the converted attachment for the open form, if any
func (s *Service) Pending(sessionID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.forms[sessionID]
	if !ok || form.dataURI == "" {
		return "", false
	}
	return form.dataURI, true
}

func (s *Service) allowedExtension(filename string) bool {
	parts := strings.Split(filename, ".")
	if len(parts) < 2 {
		return false
	}
	ext := strings.ToLower(parts[len(parts)-1])
	return lo.Contains(s.allowed, ext)
}
