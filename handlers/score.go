package handlers

import (
	"log"
	"net/http"

	"avatar_interview_backend/models"
	"avatar_interview_backend/services"

	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	scorer *services.ScoringService
}

func NewScoreHandler(scorer *services.ScoringService) *ScoreHandler {
	return &ScoreHandler{scorer: scorer}
}

// SubmitAnswers scores a submission against the quiz set. A missing or
// malformed body is treated as an empty submission rather than rejected.
func (h *ScoreHandler) SubmitAnswers(c *gin.Context) {
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Treating malformed submission as empty: %v", err)
		req.Answers = nil
	}

	c.JSON(http.StatusOK, h.scorer.Score(req.Answers))
}
