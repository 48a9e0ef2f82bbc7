// internal/workers/guidance/calculate-roi/salary.go
package calculateroi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const lakh = 100000.0

// salaryRangePattern accepts the catalog's "₹8-25 LPA" format, with or
// without the currency symbol and with fractional bounds.
var salaryRangePattern = regexp.MustCompile(`(?i)^₹?\s*(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)\s*LPA$`)

// ParseSalaryRange extracts the low and high bounds, in lakhs per annum,
// from a salary range string. Parsing has an explicit failure mode so
// callers choose their own default instead of propagating NaN.
func ParseSalaryRange(raw string) (low, high float64, err error) {
	m := salaryRangePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, 0, fmt.Errorf("unrecognized salary range %q", raw)
	}

	low, err = strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse lower bound of %q: %w", raw, err)
	}
	high, err = strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse upper bound of %q: %w", raw, err)
	}
	if high < low {
		return 0, 0, fmt.Errorf("inverted salary range %q", raw)
	}

	return low, high, nil
}

// AnnualSalaryFromRange converts the range's upper bound to absolute
// currency units per year.
func AnnualSalaryFromRange(raw string) (float64, error) {
	_, high, err := ParseSalaryRange(raw)
	if err != nil {
		return 0, err
	}
	return high * lakh, nil
}
