package services

import (
	"math"
	"strconv"
	"strings"

	"avatar_interview_backend/models"
)

// Grade bands, inclusive lower bounds on the percentage.
const (
	GradeExcellent        = "Excellent"
	GradeGood             = "Good"
	GradeAverage          = "Average"
	GradeNeedsImprovement = "Needs Improvement"
)

// ScoringService grades submissions against a fixed question set.
// The set is immutable, so scoring the same submission twice returns the
// same result.
type ScoringService struct {
	questions []models.Question
}

func NewScoringService(questions []models.Question) *ScoringService {
	return &ScoringService{questions: questions}
}

// Score walks the question set in definition order, comparing each stored
// answer key against the uppercased submitted letter. Missing entries count
// as an empty selection and are never correct.
func (s *ScoringService) Score(answers map[string]string) models.ScoreResult {
	results := make([]models.QuestionResult, 0, len(s.questions))
	score := 0

	for _, q := range s.questions {
		selected := strings.ToUpper(strings.TrimSpace(answers[strconv.Itoa(q.ID)]))
		isCorrect := selected != "" && selected == q.Correct
		if isCorrect {
			score++
		}
		results = append(results, models.QuestionResult{
			ID:        q.ID,
			Text:      q.Text,
			Options:   q.Options,
			Selected:  selected,
			Correct:   q.Correct,
			IsCorrect: isCorrect,
		})
	}

	total := len(s.questions)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(score) / float64(total) * 100))
	}

	return models.ScoreResult{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Grade:      GradeFor(percentage),
		Results:    results,
	}
}

// GradeFor maps a percentage to its qualitative band.
func GradeFor(percentage int) string {
	switch {
	case percentage >= 80:
		return GradeExcellent
	case percentage >= 60:
		return GradeGood
	case percentage >= 40:
		return GradeAverage
	default:
		return GradeNeedsImprovement
	}
}
