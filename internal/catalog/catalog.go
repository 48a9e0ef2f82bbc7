// internal/catalog/catalog.go

// Package catalog holds the career reference data keyed by recommendation
// label. Lookups never fail: unknown labels resolve to a designated default
// record with generic cross-domain careers.
package catalog

import "guidance-workers/internal/models"

// DefaultLabel is the sentinel key for the fallback record.
const DefaultLabel = "default"

// Catalog is an immutable label -> CareerDetail mapping with a default.
type Catalog struct {
	entries map[string]models.CareerDetail
	def     models.CareerDetail
}

// NewStatic returns the embedded reference catalog.
func NewStatic() *Catalog {
	return &Catalog{
		entries: staticEntries,
		def:     defaultEntry,
	}
}

// New builds a catalog from explicit entries. Entries under DefaultLabel
// replace the built-in default record.
func New(entries map[string]models.CareerDetail) *Catalog {
	def := defaultEntry
	if d, ok := entries[DefaultLabel]; ok {
		def = d
		delete(entries, DefaultLabel)
	}
	return &Catalog{entries: entries, def: def}
}

// Resolve returns the record for label, or the default record on a miss.
func (c *Catalog) Resolve(label string) models.CareerDetail {
	if detail, ok := c.entries[label]; ok {
		return detail
	}
	return c.def
}

// Has reports whether label has a dedicated (non-default) record.
func (c *Catalog) Has(label string) bool {
	_, ok := c.entries[label]
	return ok
}

// Default returns the fallback record.
func (c *Catalog) Default() models.CareerDetail {
	return c.def
}

// Len returns the number of dedicated records, excluding the default.
func (c *Catalog) Len() int {
	return len(c.entries)
}

var defaultEntry = models.CareerDetail{
	Description: "A broad set of careers that reward general aptitude and adaptability across domains.",
	Careers: []models.CareerOption{
		{Title: "Management Trainee", SalaryRange: "₹4-12 LPA", GrowthTier: "steady"},
		{Title: "Business Analyst", SalaryRange: "₹5-15 LPA", GrowthTier: "high"},
		{Title: "Civil Services Officer", SalaryRange: "₹6-15 LPA", GrowthTier: "steady"},
		{Title: "Entrepreneur", SalaryRange: "₹3-50 LPA", GrowthTier: "variable"},
	},
	Courses: []string{"BBA", "BA Liberal Arts", "B.Com", "Integrated Law (BA LLB)"},
	Skills:  []string{"Communication", "Critical Thinking", "Problem Solving", "Time Management"},
}

var staticEntries = map[string]models.CareerDetail{
	"Engineering & Technology": {
		Description: "Design, build and operate software, hardware and large-scale technical systems.",
		Careers: []models.CareerOption{
			{Title: "Software Engineer", SalaryRange: "₹8-25 LPA", GrowthTier: "high"},
			{Title: "Data Scientist", SalaryRange: "₹10-30 LPA", GrowthTier: "high"},
			{Title: "Mechanical Engineer", SalaryRange: "₹5-15 LPA", GrowthTier: "steady"},
			{Title: "DevOps Engineer", SalaryRange: "₹9-28 LPA", GrowthTier: "high"},
		},
		Courses: []string{"B.Tech Computer Science", "B.Tech Mechanical", "B.Sc IT", "Diploma in Engineering"},
		Skills:  []string{"Programming", "Mathematics", "Systems Thinking", "Debugging"},
	},
	"Medical & Healthcare": {
		Description: "Diagnose, treat and care for patients, or advance medicine through allied sciences.",
		Careers: []models.CareerOption{
			{Title: "Doctor (MBBS)", SalaryRange: "₹10-40 LPA", GrowthTier: "high"},
			{Title: "Pharmacist", SalaryRange: "₹3-10 LPA", GrowthTier: "steady"},
			{Title: "Physiotherapist", SalaryRange: "₹3-12 LPA", GrowthTier: "steady"},
			{Title: "Medical Researcher", SalaryRange: "₹6-20 LPA", GrowthTier: "high"},
		},
		Courses: []string{"MBBS", "BDS", "B.Pharm", "B.Sc Nursing", "BPT"},
		Skills:  []string{"Biology", "Empathy", "Attention to Detail", "Decision Making Under Pressure"},
	},
	"Commerce & Finance": {
		Description: "Manage money, markets, audits and the commercial engines of organizations.",
		Careers: []models.CareerOption{
			{Title: "Chartered Accountant", SalaryRange: "₹7-25 LPA", GrowthTier: "high"},
			{Title: "Investment Banker", SalaryRange: "₹12-40 LPA", GrowthTier: "high"},
			{Title: "Financial Analyst", SalaryRange: "₹5-18 LPA", GrowthTier: "steady"},
			{Title: "Company Secretary", SalaryRange: "₹6-15 LPA", GrowthTier: "steady"},
		},
		Courses: []string{"B.Com", "CA Foundation", "BBA Finance", "CFA"},
		Skills:  []string{"Numeracy", "Analysis", "Regulatory Awareness", "Negotiation"},
	},
	"Arts & Humanities": {
		Description: "Understand people, cultures and ideas, and communicate them through media and policy.",
		Careers: []models.CareerOption{
			{Title: "Journalist", SalaryRange: "₹3-12 LPA", GrowthTier: "steady"},
			{Title: "Psychologist", SalaryRange: "₹4-15 LPA", GrowthTier: "high"},
			{Title: "UX Designer", SalaryRange: "₹6-20 LPA", GrowthTier: "high"},
			{Title: "Content Strategist", SalaryRange: "₹4-14 LPA", GrowthTier: "steady"},
		},
		Courses: []string{"BA Psychology", "BA Journalism", "B.Des", "BA Sociology"},
		Skills:  []string{"Writing", "Research", "Empathy", "Visual Communication"},
	},
	"Science & Research": {
		Description: "Investigate the natural world and push the boundaries of fundamental knowledge.",
		Careers: []models.CareerOption{
			{Title: "Research Scientist", SalaryRange: "₹6-20 LPA", GrowthTier: "high"},
			{Title: "Biotechnologist", SalaryRange: "₹5-18 LPA", GrowthTier: "high"},
			{Title: "Environmental Scientist", SalaryRange: "₹4-12 LPA", GrowthTier: "steady"},
			{Title: "Statistician", SalaryRange: "₹6-22 LPA", GrowthTier: "high"},
		},
		Courses: []string{"B.Sc Physics", "B.Sc Biotechnology", "B.Stat", "Integrated M.Sc"},
		Skills:  []string{"Scientific Method", "Mathematics", "Patience", "Technical Writing"},
	},
}
