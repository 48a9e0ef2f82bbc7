// internal/workers/guidance/retrieve-matches/models.go
package retrievematches

import "guidance-workers/internal/models"

// MatchKind selects which matching endpoint and response shape to use.
type MatchKind string

const (
	KindInstitutes   MatchKind = "institutes"
	KindScholarships MatchKind = "scholarships"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

type Input struct {
	Kind MatchKind `json:"matchKind"`

	// SearchTerm filters by name/provider and seeds fallback synthesis.
	SearchTerm string `json:"searchTerm,omitempty"`
	// Category is a type filter token ("merit", "research", ...) or
	// CategoryAll/empty for no filtering.
	Category string `json:"category,omitempty"`

	// Score supplies the derived strengths/interests signals.
	Score      *models.QuizScore   `json:"score,omitempty"`
	RawAnswers []models.QuizAnswer `json:"rawAnswers,omitempty"`

	AcademicScore float64                `json:"academicScore,omitempty"`
	ChosenCourse  string                 `json:"chosenCourse,omitempty"`
	Location      string                 `json:"location,omitempty"`
	Profile       map[string]interface{} `json:"profile,omitempty"`
}

type Output struct {
	// RequestID identifies this invocation so callers racing multiple
	// requests can discard stale completions.
	RequestID     string               `json:"requestId"`
	Results       []models.MatchResult `json:"results"`
	UsingFallback bool                 `json:"usingFallback"`
	// Error carries the fetch failure informationally; it never blocks.
	Error string `json:"error,omitempty"`
}

// --- matching service wire shapes (defined by the remote service) ---

type quizResultPayload struct {
	Strengths  []string            `json:"strengths"`
	Interests  []string            `json:"interests"`
	RawAnswers []models.QuizAnswer `json:"rawAnswers"`
}

type instituteRequest struct {
	Profile     map[string]interface{} `json:"profile"`
	QuizResult  quizResultPayload      `json:"quizResult"`
	Preferences map[string]interface{} `json:"preferences"`
}

type scholarshipRequest struct {
	ChosenCourse  string  `json:"chosenCourse"`
	Location      string  `json:"location"`
	AcademicScore float64 `json:"academicScore"`
}

type matchResponse struct {
	Institutes   []models.MatchResult `json:"institutes"`
	Scholarships []models.MatchResult `json:"scholarships"`
}
