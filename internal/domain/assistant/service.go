// internal/domain/assistant/service.go
package assistant

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fifi-bags/storefront-backend/internal/domain/catalog"
)

var (
	// ErrEmptyMessage rejects a send with neither text nor image
	ErrEmptyMessage = errors.New("message requires text or an image")
	// ErrBusy rejects a send while a reply is still pending
	ErrBusy = errors.New("a reply is already in flight")
)

// Chatter is the external generative-chat boundary: one conversational turn
// plus the current catalog in, one reply string out.
type Chatter interface {
	Reply(ctx context.Context, message string, products []catalog.Product, imageData string) (string, error)
}

type conversation struct {
	messages []Message
	inFlight bool
}

// Service maintains per-session chat transcripts and delegates each turn to
// the external chat service. At most one request per session may be in
// flight; a second send while waiting is refused, not queued.
type Service struct {
	mu            sync.Mutex
	conversations map[string]*conversation
	catalog       *catalog.Service
	chatter       Chatter
}

// NewService creates a new assistant service
func NewService(catalogService *catalog.Service, chatter Chatter) *Service {
	return &Service{
		conversations: make(map[string]*conversation),
		catalog:       catalogService,
		chatter:       chatter,
	}
}

// Transcript returns a copy of the session's messages, seeding the fixed
// greeting on first access
func (s *Service) Transcript(sessionID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.conversation(sessionID)
	out := make([]Message, len(conv.messages))
	copy(out, conv.messages)
	return out
}

// Busy reports whether the session has a reply pending
func (s *Service) Busy(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversation(sessionID).inFlight
}

func (s *Service) conversation(sessionID string) *conversation {
	conv, ok := s.conversations[sessionID]
	if !ok {
		conv = &conversation{
			messages: []Message{{
				ID:   uuid.NewString(),
				Role: RoleAssistant,
				Text: Greeting,
			}},
		}
		s.conversations[sessionID] = conv
	}
	return conv
}

// Send appends the user's turn, calls the chat service with the live
// catalog, and appends the reply. Failures of the external service never
// surface as errors; the reply becomes a fixed apology instead. There is no
// retry, cancellation, or timeout beyond the caller's context.
func (s *Service) Send(ctx context.Context, sessionID, text, image string) (*Message, error) {
	if text == "" && image == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	conv := s.conversation(sessionID)
	if conv.inFlight {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	conv.inFlight = true

	// Optimistic append of the user's turn
	conv.messages = append(conv.messages, Message{
		ID:    uuid.NewString(),
		Role:  RoleUser,
		Text:  text,
		Image: image,
	})
	s.mu.Unlock()

	replyText, err := s.chatter.Reply(ctx, text, s.catalog.List(), image)
	if err != nil {
		logrus.WithError(err).Error("Chat service request failed")
		replyText = FallbackUnavailable
	}

	reply := Message{
		ID:   uuid.NewString(),
		Role: RoleAssistant,
		Text: replyText,
	}

	// The reply lands in the transcript even if the widget was closed
	// while the request was outstanding.
	s.mu.Lock()
	conv.messages = append(conv.messages, reply)
	conv.inFlight = false
	s.mu.Unlock()

	return &reply, nil
}
