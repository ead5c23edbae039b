package models

// QuizQuestions is the fixed multiple-choice set used by the scoring flow.
// Defined once, never mutated after startup.
var QuizQuestions = []Question{
	{
		ID:   1,
		Text: "You are behind on two deadlines and a third urgent task arrives. What do you do first?",
		Options: []Option{
			{ID: "A", Text: "Work extra hours on whichever task is loudest"},
			{ID: "B", Text: "Re-prioritize all three with your manager and communicate new timelines"},
			{ID: "C", Text: "Finish the tasks in the order they were assigned"},
			{ID: "D", Text: "Delegate everything and focus on the newest task"},
		},
		Correct: "B",
	},
	{
		ID:   2,
		Text: "A teammate strongly disagrees with your approach in a design review. What is the most constructive response?",
		Options: []Option{
			{ID: "A", Text: "Defend your approach until they concede"},
			{ID: "B", Text: "Defer to them to avoid conflict"},
			{ID: "C", Text: "Ask them to walk through their concerns and compare trade-offs openly"},
			{ID: "D", Text: "Escalate to a manager immediately"},
		},
		Correct: "C",
	},
	{
		ID:   3,
		Text: "Midway through a project you realize a core assumption was wrong. What should happen next?",
		Options: []Option{
			{ID: "A", Text: "Raise it with stakeholders right away and propose a revised plan"},
			{ID: "B", Text: "Quietly fix it and hope the timeline absorbs the change"},
			{ID: "C", Text: "Continue as planned since the deadline is fixed"},
			{ID: "D", Text: "Wait for someone else to notice"},
		},
		Correct: "A",
	},
	{
		ID:   4,
		Text: "Your supervisor gives you critical feedback on a deliverable you worked hard on. What is the best first step?",
		Options: []Option{
			{ID: "A", Text: "Explain why the criticism is unfair"},
			{ID: "B", Text: "Ignore it and move on"},
			{ID: "C", Text: "Agree with everything to end the conversation"},
			{ID: "D", Text: "Ask clarifying questions to understand the specific concerns"},
		},
		Correct: "D",
	},
	{
		ID:   5,
		Text: "You notice a recurring manual step slowing your whole team down. What do you do?",
		Options: []Option{
			{ID: "A", Text: "Keep doing it manually since it works"},
			{ID: "B", Text: "Propose and prototype an automation, then share it with the team"},
			{ID: "C", Text: "Complain about it in retrospectives"},
			{ID: "D", Text: "Only automate your own copy of the workflow"},
		},
		Correct: "B",
	},
}

// VoiceQuestions is the open-ended set for the voice interview variant.
// No options, no answer key; evaluation happens outside this service.
var VoiceQuestions = []Question{
	{ID: 1, Text: "Tell me about a time you had to manage multiple deadlines. How did you handle it?"},
	{ID: 2, Text: "Describe a situation where you disagreed with a team member. What did you do?"},
	{ID: 3, Text: "Have you ever realized mid-project that something was going wrong? How did you respond?"},
	{ID: 4, Text: "How do you handle critical feedback from a supervisor? Can you give an example?"},
}

// QuestionsForMode picks the bank served by the questions endpoint.
func QuestionsForMode(mode string) []Question {
	if mode == "voice" {
		return VoiceQuestions
	}
	return QuizQuestions
}
