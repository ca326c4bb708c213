// File: handlers/webhook.go
package handlers

import (
	"errors"
	"net/http"

	"bookline/models"
	"bookline/services/conversation"
	"bookline/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler terminates the messaging provider's webhook: the GET
// verification handshake and the POST event feed into the dialogue.
type WebhookHandler struct {
	VerifyToken string
	Dialogue    conversation.Handler
}

// NewWebhookHandler builds the handler.
func NewWebhookHandler(verifyToken string, dialogue conversation.Handler) *WebhookHandler {
	return &WebhookHandler{VerifyToken: verifyToken, Dialogue: dialogue}
}

// VerifyWebhookHandler answers the provider's subscription challenge.
func (h *WebhookHandler) VerifyWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "" || token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing mode or token"})
		return
	}
	if mode == "subscribe" && token == h.VerifyToken {
		logger.Info("webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}
	logger.Warn("webhook verification failed", zap.String("mode", mode))
	c.String(http.StatusForbidden, "Forbidden: Invalid token")
}

// EventWebhookHandler dispatches one inbound event to the dialogue. Structural
// problems are 400s; everything the dialogue recognized — including events it
// chose to ignore — is a 200 with a status tag, so the provider never retries
// unactionable events.
func (h *WebhookHandler) EventWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var envelope models.WebhookEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	event, err := conversation.ExtractEvent(envelope)
	if err != nil {
		switch {
		case errors.Is(err, conversation.ErrNonMessage):
			c.JSON(http.StatusOK, gin.H{"status": "non-message"})
		case errors.Is(err, conversation.ErrUnsupportedMessage):
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	outcome, err := h.Dialogue.HandleEvent(c.Request.Context(), event)
	if err != nil {
		if errors.Is(err, conversation.ErrMalformedEvent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("webhook event handling failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": outcome})
}
