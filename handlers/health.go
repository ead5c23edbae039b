package handlers

import (
	"net/http"

	"avatar_interview_backend/config"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthCheck reports readiness and which upstream credentials are
// configured. Booleans only, never the secrets themselves.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"mode":              h.cfg.InterviewMode,
		"speech_configured": h.cfg.SpeechConfigured(),
		"tavus_configured":  h.cfg.TavusConfigured(),
	})
}
