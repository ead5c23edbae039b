package handlers

import (
	"net/http"

	"avatar_interview_backend/models"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questions []models.Question
}

func NewQuestionHandler(questions []models.Question) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// ListQuestions returns the fixed question set. Answer keys are excluded
// from serialization at the model level.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.questions)
}
