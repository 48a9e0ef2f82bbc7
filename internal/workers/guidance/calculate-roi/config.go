// internal/workers/guidance/calculate-roi/config.go
package calculateroi

import "time"

type Config struct {
	Timeout time.Duration
	// DefaultAnnualSalary is used when no salary range is supplied or the
	// supplied one cannot be parsed.
	DefaultAnnualSalary float64
	// DefaultWorkingYears is used when the input omits a career span.
	DefaultWorkingYears int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:             5 * time.Second,
		DefaultAnnualSalary: 500000,
		DefaultWorkingYears: 40,
	}
}
