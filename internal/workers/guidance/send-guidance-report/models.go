// internal/workers/guidance/send-guidance-report/models.go
package sendguidancereport

import (
	"time"

	"guidance-workers/internal/models"
)

type Input struct {
	To          string `json:"to"`
	StudentName string `json:"studentName,omitempty"`

	Score          *models.QuizScore    `json:"score,omitempty"`
	Recommendation *models.CareerDetail `json:"recommendation,omitempty"`
	Institutes     []models.MatchResult `json:"institutes,omitempty"`
	Scholarships   []models.MatchResult `json:"scholarships,omitempty"`
}

type Output struct {
	Sent      bool      `json:"sent"`
	MessageID string    `json:"messageId,omitempty"`
	SentAt    time.Time `json:"sentAt"`
	// Skipped is set when delivery is disabled by configuration.
	Skipped bool `json:"skipped,omitempty"`
}
