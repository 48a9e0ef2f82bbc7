// internal/workers/guidance/score-quiz/models.go
package scorequiz

import "guidance-workers/internal/models"

type Input struct {
	// SessionID, when set, persists the score and answers for other pages.
	SessionID string `json:"sessionId,omitempty"`
	// Answers in presentation order. Order is what breaks tally ties.
	Answers []models.QuizAnswer `json:"answers"`
	// TotalQuestions is the size of the full question set. Zero means
	// "everything presented was answered".
	TotalQuestions int `json:"totalQuestions,omitempty"`
}

type Output struct {
	Score models.QuizScore `json:"score"`
}
