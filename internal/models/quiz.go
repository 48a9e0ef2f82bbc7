// internal/models/quiz.go
package models

// QuizAnswer is one answered question, in presentation order. Category is
// the aptitude bucket the selected option maps to.
type QuizAnswer struct {
	QuestionID  string `json:"questionId"`
	OptionIndex int    `json:"optionIndex"`
	Category    string `json:"category"`
}

// QuizScore is the aggregated result of a quiz submission. It is created
// once per submission and never mutated afterwards.
type QuizScore struct {
	// Categories maps category label to its tally of attributed answers.
	Categories map[string]int `json:"categories"`
	// Total is the number of answered questions.
	Total int `json:"total"`
	// Percentage is completion/confidence relative to the full question set,
	// 0..100.
	Percentage int `json:"percentage"`
	// Recommendations lists category labels in descending tally order, ties
	// broken by first-encountered order, truncated for display.
	Recommendations []string `json:"recommendations"`
}
