// internal/interfaces/http/handlers/assistant.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fifi-bags/storefront-backend/internal/domain/assistant"
	"github.com/fifi-bags/storefront-backend/internal/interfaces/http/middleware"
)

// AssistantHandler exposes the chat widget transcript and message endpoint
type AssistantHandler struct {
	assistantService *assistant.Service
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService *assistant.Service) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
	}
}

// GetTranscript returns the session's chat transcript
func (h *AssistantHandler) GetTranscript(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"messages": h.assistantService.Transcript(sessionID),
		"busy":     h.assistantService.Busy(sessionID),
	})
}

// SendMessage submits one conversational turn. The text may be empty when an
// image is attached as a base64 data URI.
func (h *AssistantHandler) SendMessage(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req struct {
		Text  string `json:"text"`
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	reply, err := h.assistantService.Send(c.Request.Context(), sessionID, req.Text, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Message requires text or an image",
			})
		case errors.Is(err, assistant.ErrBusy):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A reply is already on its way",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to send message",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":    reply,
		"messages": h.assistantService.Transcript(sessionID),
	})
}
