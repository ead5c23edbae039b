package handlers

import (
	"net/http"

	"avatar_interview_backend/config"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	cfg *config.Config
}

func NewPageHandler(cfg *config.Config) *PageHandler {
	return &PageHandler{cfg: cfg}
}

func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// Interview renders the interview page with the speech region baked in so
// the browser knows which regional endpoint to talk to.
func (h *PageHandler) Interview(c *gin.Context) {
	c.HTML(http.StatusOK, "interview.html", gin.H{
		"SpeechRegion": h.cfg.SpeechRegion,
	})
}
