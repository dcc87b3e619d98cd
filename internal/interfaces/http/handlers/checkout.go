// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fifi-bags/storefront-backend/internal/domain/checkout"
	"github.com/fifi-bags/storefront-backend/internal/domain/shell"
	"github.com/fifi-bags/storefront-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler drives the cart -> gift -> payment flow over HTTP
type CheckoutHandler struct {
	checkoutService *checkout.Service
	shellService    *shell.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, shellService *shell.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		shellService:    shellService,
	}
}

// GetState returns the session's checkout state
func (h *CheckoutHandler) GetState(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"state": h.checkoutService.State(sessionID),
	})
}

// Proceed advances the cart step to the gift step
func (h *CheckoutHandler) Proceed(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	if err := h.checkoutService.Proceed(sessionID); err != nil {
		h.transitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state": h.checkoutService.State(sessionID),
	})
}

// SetGift stores the gift options for the session's order
func (h *CheckoutHandler) SetGift(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var gift checkout.GiftOptions
	if err := c.ShouldBindJSON(&gift); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	h.checkoutService.SetGift(sessionID, gift)

	c.JSON(http.StatusOK, gin.H{
		"state": h.checkoutService.State(sessionID),
	})
}

// Continue advances the gift step to the payment step
func (h *CheckoutHandler) Continue(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	if err := h.checkoutService.Continue(sessionID); err != nil {
		h.transitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state": h.checkoutService.State(sessionID),
	})
}

// Back steps the flow backwards
func (h *CheckoutHandler) Back(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	if err := h.checkoutService.Back(sessionID); err != nil {
		h.transitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state": h.checkoutService.State(sessionID),
	})
}

// GetSummary returns the payment-step order summary
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"summary": h.checkoutService.Summary(sessionID),
	})
}

// Finish completes the order from the payment step
func (h *CheckoutHandler) Finish(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	message, err := h.checkoutService.Finish(sessionID)
	if err != nil {
		h.transitionError(c, err)
		return
	}

	h.shellService.Success(sessionID, message)

	c.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

// Close abandons the flow, leaving the bag intact
func (h *CheckoutHandler) Close(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	h.checkoutService.Close(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"state": h.checkoutService.State(sessionID),
	})
}

func (h *CheckoutHandler) transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrCartEmpty):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Your bag is empty",
		})
	case errors.Is(err, checkout.ErrGiftIncomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "A gift note needs a recipient and a message",
		})
	case errors.Is(err, checkout.ErrWrongStep):
		c.JSON(http.StatusConflict, gin.H{
			"error": "That step is not available right now",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Checkout failed",
		})
	}
}
