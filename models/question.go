package models

// Option is one selectable choice of a multiple-choice question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is an interview question. Voice-interview questions carry no
// options. Correct holds the answer key and is never serialized; it is only
// revealed inside a ScoreResult after a submission.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options,omitempty"`
	Correct string   `json:"-"`
}

// SubmitRequest maps question ids (as strings) to the selected option letter.
type SubmitRequest struct {
	Answers map[string]string `json:"answers"`
}

// QuestionResult is the per-question breakdown returned after scoring.
type QuestionResult struct {
	ID        int      `json:"id"`
	Text      string   `json:"text"`
	Options   []Option `json:"options,omitempty"`
	Selected  string   `json:"selected"`
	Correct   string   `json:"correct"`
	IsCorrect bool     `json:"is_correct"`
}

type ScoreResult struct {
	Score      int              `json:"score"`
	Total      int              `json:"total"`
	Percentage int              `json:"percentage"`
	Grade      string           `json:"grade"`
	Results    []QuestionResult `json:"results"`
}

// Conversation is the pair of fields relayed from the conversation provider.
type Conversation struct {
	URL string `json:"conversation_url"`
	ID  string `json:"conversation_id"`
}
