// internal/models/match.go
package models

// MatchResult is one institute or scholarship candidate. The filter pipeline
// only inspects Name, Type and Provider; everything else is carried through
// for display.
type MatchResult struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Provider    string   `json:"provider,omitempty"`
	Eligibility string   `json:"eligibility,omitempty"`
	Courses     []string `json:"courses,omitempty"`
	Location    string   `json:"location,omitempty"`
	Amount      string   `json:"amount,omitempty"`
}
