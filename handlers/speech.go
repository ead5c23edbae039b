package handlers

import (
	"errors"
	"log"
	"net/http"

	"avatar_interview_backend/services"

	"github.com/gin-gonic/gin"
)

type SpeechHandler struct {
	speech *services.SpeechService
}

func NewSpeechHandler(speech *services.SpeechService) *SpeechHandler {
	return &SpeechHandler{speech: speech}
}

// GetSpeechToken proxies a short-lived speech token to the browser. The
// upstream body is forwarded verbatim with its own content type.
func (h *SpeechHandler) GetSpeechToken(c *gin.Context) {
	cred, err := h.speech.IssueSpeechToken(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, contentTypeOrDefault(cred.ContentType), cred.Body)
}

// GetIceToken proxies relay credentials for the avatar media connection.
func (h *SpeechHandler) GetIceToken(c *gin.Context) {
	cred, err := h.speech.IssueRelayCredentials(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, contentTypeOrDefault(cred.ContentType), cred.Body)
}

func (h *SpeechHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrSpeechKeyNotConfigured) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	log.Printf("Error issuing speech credential: %v", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

func contentTypeOrDefault(contentType string) string {
	if contentType == "" {
		return "text/plain; charset=utf-8"
	}
	return contentType
}
