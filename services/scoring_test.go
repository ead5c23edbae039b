package services

import (
	"strconv"
	"testing"

	"avatar_interview_backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveQuestionSet() []models.Question {
	return []models.Question{
		{ID: 1, Text: "q1", Correct: "A"},
		{ID: 2, Text: "q2", Correct: "B"},
		{ID: 3, Text: "q3", Correct: "C"},
		{ID: 4, Text: "q4", Correct: "D"},
		{ID: 5, Text: "q5", Correct: "A"},
	}
}

func TestScore_CountsOnlyMatchingAnswers(t *testing.T) {
	s := NewScoringService(fiveQuestionSet())

	result := s.Score(map[string]string{
		"1": "A", // correct
		"2": "C", // wrong
		"3": "C", // correct
		"9": "A", // unknown id, ignored
	})

	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 5, result.Total)
	require.Len(t, result.Results, 5)
	assert.True(t, result.Results[0].IsCorrect)
	assert.False(t, result.Results[1].IsCorrect)
	assert.True(t, result.Results[2].IsCorrect)
	assert.False(t, result.Results[3].IsCorrect)
	assert.False(t, result.Results[4].IsCorrect)
}

func TestScore_CaseInsensitiveSelection(t *testing.T) {
	s := NewScoringService(fiveQuestionSet())

	result := s.Score(map[string]string{"1": "a", "2": " b ", "3": "c", "4": "d", "5": "a"})

	assert.Equal(t, 5, result.Score)
	assert.Equal(t, "A", result.Results[0].Selected)
	assert.Equal(t, "B", result.Results[1].Selected)
}

func TestScore_PercentageTable(t *testing.T) {
	tests := []struct {
		correct    int
		percentage int
	}{
		{0, 0},
		{1, 20},
		{2, 40},
		{3, 60},
		{4, 80},
		{5, 100},
	}

	questions := fiveQuestionSet()
	letters := []string{"A", "B", "C", "D", "A"}
	for _, tc := range tests {
		answers := map[string]string{}
		for i := 0; i < tc.correct; i++ {
			answers[strconv.Itoa(i+1)] = letters[i]
		}

		result := NewScoringService(questions).Score(answers)
		assert.Equal(t, tc.correct, result.Score, "score for %d correct answers", tc.correct)
		assert.Equal(t, tc.percentage, result.Percentage, "percentage for %d correct answers", tc.correct)
	}
}

func TestGradeFor_BandEdges(t *testing.T) {
	tests := []struct {
		percentage int
		grade      string
	}{
		{100, GradeExcellent},
		{80, GradeExcellent},
		{79, GradeGood},
		{60, GradeGood},
		{59, GradeAverage},
		{40, GradeAverage},
		{39, GradeNeedsImprovement},
		{0, GradeNeedsImprovement},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.grade, GradeFor(tc.percentage), "grade for %d%%", tc.percentage)
	}
}

func TestScore_EmptySubmission(t *testing.T) {
	s := NewScoringService(fiveQuestionSet())

	for _, answers := range []map[string]string{nil, {}} {
		result := s.Score(answers)

		assert.Equal(t, 0, result.Score)
		assert.Equal(t, 0, result.Percentage)
		assert.Equal(t, GradeNeedsImprovement, result.Grade)
		require.Len(t, result.Results, 5)
		for _, r := range result.Results {
			assert.False(t, r.IsCorrect)
			assert.Empty(t, r.Selected)
		}
	}
}

func TestScore_RevealsCorrectAnswers(t *testing.T) {
	s := NewScoringService(fiveQuestionSet())

	result := s.Score(map[string]string{"1": "B"})

	require.Len(t, result.Results, 5)
	assert.Equal(t, "A", result.Results[0].Correct)
	assert.Equal(t, "B", result.Results[0].Selected)
	assert.False(t, result.Results[0].IsCorrect)
}

func TestScore_Idempotent(t *testing.T) {
	s := NewScoringService(fiveQuestionSet())
	answers := map[string]string{"1": "A", "3": "c"}

	first := s.Score(answers)
	second := s.Score(answers)

	assert.Equal(t, first, second)
}

func TestScore_QuizBankAnswerKeyComplete(t *testing.T) {
	for _, q := range models.QuizQuestions {
		assert.NotEmpty(t, q.Correct, "question %d has no answer key", q.ID)
		assert.NotEmpty(t, q.Options, "question %d has no options", q.ID)
	}
	for _, q := range models.VoiceQuestions {
		assert.Empty(t, q.Correct, "voice question %d should have no answer key", q.ID)
		assert.Empty(t, q.Options, "voice question %d should have no options", q.ID)
	}
}
