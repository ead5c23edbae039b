package handlers

import (
	"errors"
	"log"
	"net/http"

	"avatar_interview_backend/services"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	tavus *services.TavusService
}

func NewConversationHandler(tavus *services.TavusService) *ConversationHandler {
	return &ConversationHandler{tavus: tavus}
}

// StartConversation creates an avatar session and relays its URL and id.
func (h *ConversationHandler) StartConversation(c *gin.Context) {
	conversation, err := h.tavus.StartConversation(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrTavusKeyNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error starting conversation: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, conversation)
}
