// internal/domain/checkout/service.go
package checkout

import (
	"errors"
	"sync"

	"github.com/fifi-bags/storefront-backend/internal/domain/cart"
	"github.com/fifi-bags/storefront-backend/internal/domain/payment"
)

// Step is the current position in the checkout flow
type Step string

// Checkout flow steps. The flow is linear and back-navigable:
// CART -> GIFT -> PAYMENT, finishing from PAYMENT.
const (
	StepCart    Step = "CART"
	StepGift    Step = "GIFT"
	StepPayment Step = "PAYMENT"
)

// Success messages emitted on completion
const (
	MsgOrderPlaced     = "Order placed successfully! 🤎"
	MsgGiftOrderPlaced = "Order & Gift Note placed successfully! 🎁"
)

var (
	// ErrCartEmpty blocks proceeding past the cart step with nothing in the bag
	ErrCartEmpty = errors.New("cart is empty")
	// ErrGiftIncomplete blocks the gift step when a gift note is requested
	// but recipient or message is missing
	ErrGiftIncomplete = errors.New("gift note requires a recipient and a message")
	// ErrWrongStep rejects a transition issued from the wrong step
	ErrWrongStep = errors.New("transition not available from current step")
)

// GiftOptions holds the optional gift note attached to an order
type GiftOptions struct {
	IsGift        bool   `json:"isGift"`
	RecipientName string `json:"recipientName"`
	SenderName    string `json:"senderName"`
	Message       string `json:"message"`
}

// State is one session's position in the checkout flow
type State struct {
	Step Step        `json:"step"`
	Gift GiftOptions `json:"gift"`
}

// Summary is what the payment step displays: the snapshot-price total and
// the configured bank-transfer details. No tax, shipping, or currency
// conversion exists.
type Summary struct {
	Total        float64          `json:"total"`
	Payment      payment.Settings `json:"payment"`
	GiftAttached bool             `json:"gift_attached"`
}

// Service drives the checkout state machine. Checkout state is session-only,
// created fresh on open and reset on close or completion.
type Service struct {
	mu       sync.Mutex
	states   map[string]*State
	carts    *cart.Service
	payments *payment.Service
}

// NewService creates a new checkout service
func NewService(carts *cart.Service, payments *payment.Service) *Service {
	return &Service{
		states:   make(map[string]*State),
		carts:    carts,
		payments: payments,
	}
}

// State returns the session's current checkout state, starting a fresh one
// at the cart step if none exists
func (s *Service) State(sessionID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state(sessionID)
}

func (s *Service) state(sessionID string) *State {
	st, ok := s.states[sessionID]
	if !ok {
		st = &State{Step: StepCart}
		s.states[sessionID] = st
	}
	return st
}

// Proceed advances CART -> GIFT. Disabled while the bag is empty.
func (s *Service) Proceed(sessionID string) error {
	if s.carts.Count(sessionID) == 0 {
		return ErrCartEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(sessionID)
	if st.Step != StepCart {
		return ErrWrongStep
	}
	st.Step = StepGift
	return nil
}

// SetGift stores the session's gift options
func (s *Service) SetGift(sessionID string, gift GiftOptions) {
	s.mu.Lock()
	s.state(sessionID).Gift = gift
	s.mu.Unlock()
}

// Continue advances GIFT -> PAYMENT. Blocked when a gift note is requested
// but the message or recipient name is empty; always allowed otherwise.
func (s *Service) Continue(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(sessionID)
	if st.Step != StepGift {
		return ErrWrongStep
	}
	if st.Gift.IsGift && (st.Gift.Message == "" || st.Gift.RecipientName == "") {
		return ErrGiftIncomplete
	}
	st.Step = StepPayment
	return nil
}

// Back steps the flow backwards: PAYMENT -> GIFT, GIFT -> CART
func (s *Service) Back(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(sessionID)
	switch st.Step {
	case StepGift:
		st.Step = StepCart
	case StepPayment:
		st.Step = StepGift
	default:
		return ErrWrongStep
	}
	return nil
}

// Summary returns the payment-step view of the order
func (s *Service) Summary(sessionID string) Summary {
	s.mu.Lock()
	gift := s.state(sessionID).Gift.IsGift
	s.mu.Unlock()

	return Summary{
		Total:        s.carts.Total(sessionID),
		Payment:      s.payments.Get(),
		GiftAttached: gift,
	}
}

// Finish completes the order from the payment step: the bag is cleared,
// gift options reset to defaults, and the flow returns to the cart step.
// The returned message depends on whether a gift note was attached.
func (s *Service) Finish(sessionID string) (string, error) {
	s.mu.Lock()
	st := s.state(sessionID)
	if st.Step != StepPayment {
		s.mu.Unlock()
		return "", ErrWrongStep
	}

	message := MsgOrderPlaced
	if st.Gift.IsGift {
		message = MsgGiftOrderPlaced
	}
	delete(s.states, sessionID)
	s.mu.Unlock()

	s.carts.Clear(sessionID)
	return message, nil
}

// Close abandons the flow from any step: gift options and step reset, the
// bag is left intact
func (s *Service) Close(sessionID string) {
	s.mu.Lock()
	delete(s.states, sessionID)
	s.mu.Unlock()
}
