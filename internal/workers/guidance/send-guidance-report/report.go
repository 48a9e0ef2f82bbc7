// internal/workers/guidance/send-guidance-report/report.go
package sendguidancereport

import (
	"fmt"
	"net/mail"
	"strings"

	"guidance-workers/internal/common/errors"
)

func validateInput(input *Input) error {
	if strings.TrimSpace(input.To) == "" {
		return errors.NewReportValidationFailedError("missing recipient address")
	}
	if _, err := mail.ParseAddress(input.To); err != nil {
		return errors.NewReportValidationFailedError(fmt.Sprintf("invalid recipient address %q", input.To))
	}
	if input.Score == nil && input.Recommendation == nil {
		return errors.NewReportValidationFailedError("report needs a quiz score or a recommendation")
	}
	return nil
}

// buildReport renders the plain-text guidance summary from whatever
// pipeline outputs are present. Sections with no data are omitted.
func buildReport(input *Input) (subject, body string) {
	name := strings.TrimSpace(input.StudentName)
	if name == "" {
		name = "Student"
	}

	subject = "Your Career Guidance Report"

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nHere is your personalized career guidance summary.\n", name)

	if input.Score != nil {
		fmt.Fprintf(&b, "\nQuiz Results (%d%% profile confidence)\n", input.Score.Percentage)
		for i, label := range input.Score.Recommendations {
			fmt.Fprintf(&b, "  %d. %s (%d answers)\n", i+1, label, input.Score.Categories[label])
		}
	}

	if input.Recommendation != nil {
		fmt.Fprintf(&b, "\nRecommended Path\n%s\n", input.Recommendation.Description)
		for _, c := range input.Recommendation.Careers {
			fmt.Fprintf(&b, "  - %s (%s, growth: %s)\n", c.Title, c.SalaryRange, c.GrowthTier)
		}
		if len(input.Recommendation.Courses) > 0 {
			fmt.Fprintf(&b, "Suggested courses: %s\n", strings.Join(input.Recommendation.Courses, ", "))
		}
	}

	if len(input.Institutes) > 0 {
		fmt.Fprint(&b, "\nMatching Institutes\n")
		for _, m := range input.Institutes {
			fmt.Fprintf(&b, "  - %s (%s)\n", m.Name, m.Location)
		}
	}

	if len(input.Scholarships) > 0 {
		fmt.Fprint(&b, "\nScholarship Opportunities\n")
		for _, m := range input.Scholarships {
			fmt.Fprintf(&b, "  - %s (%s)\n", m.Name, m.Provider)
		}
	}

	fmt.Fprint(&b, "\nBest of luck,\nThe Guidance Team\n")

	return subject, b.String()
}
