// internal/workers/guidance/calculate-roi/models.go
package calculateroi

type Input struct {
	// TotalCost is the full education cost in absolute currency units.
	TotalCost float64 `json:"totalCost"`

	// SalaryRange is the selected career's range string, e.g. "₹8-25 LPA".
	SalaryRange string `json:"salaryRange,omitempty"`
	// RecommendationLabel and CareerTitle cross-reference the career
	// catalog when no salary range is supplied directly.
	RecommendationLabel string `json:"recommendationLabel,omitempty"`
	CareerTitle         string `json:"careerTitle,omitempty"`

	StudyYears   int `json:"studyYears,omitempty"`
	WorkingYears int `json:"workingYears,omitempty"`
}

type Output struct {
	TotalInvestment  float64 `json:"totalInvestment"`
	ExpectedSalary   float64 `json:"expectedSalary"`
	YearsToRecover   float64 `json:"yearsToRecover"`
	LifetimeEarnings float64 `json:"lifetimeEarnings"`
	ROIPercent       float64 `json:"roiPercent"`
	MonthlyIncome    float64 `json:"monthlyIncome"`
	// Band is the UI classification label derived from ROIPercent.
	Band string `json:"band"`
	// SalaryDefaulted reports that the default annual salary was used
	// because no parseable range was available.
	SalaryDefaulted bool `json:"salaryDefaulted"`
}
