// internal/models/career.go
package models

// CareerOption is a single career under a recommendation label.
type CareerOption struct {
	Title       string `json:"title"`
	SalaryRange string `json:"salaryRange"` // e.g. "₹8-25 LPA"
	GrowthTier  string `json:"growthTier"`
}

// CareerDetail is the static reference record behind a recommendation label.
type CareerDetail struct {
	Description string         `json:"description"`
	Careers     []CareerOption `json:"careers"`
	Courses     []string       `json:"courses"`
	Skills      []string       `json:"skills"`
}
