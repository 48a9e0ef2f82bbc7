// internal/workers/guidance/retrieve-matches/filter.go
package retrievematches

import (
	"strings"

	"guidance-workers/internal/common/metrics"
	"guidance-workers/internal/models"
)

// filterWithBackfill keeps items passing keep, then appends excluded items
// in their original order until min items are reached or the pool is
// exhausted. Filter-passing items always precede backfilled ones and
// relative order within each group is the pool order.
func filterWithBackfill(pool []models.MatchResult, keep func(models.MatchResult) bool, min int) (results []models.MatchResult, backfilled bool) {
	var pass, excluded []models.MatchResult
	for _, r := range pool {
		if keep(r) {
			pass = append(pass, r)
		} else {
			excluded = append(excluded, r)
		}
	}

	for _, r := range excluded {
		if len(pass) >= min {
			break
		}
		pass = append(pass, r)
		backfilled = true
	}

	return pass, backfilled
}

// applyFilters runs the category filter then the text filter, each with
// minimum-count backfill, so callers never present a near-empty panel just
// because the filters were restrictive.
func (h *Handler) applyFilters(pool []models.MatchResult, input *Input) []models.MatchResult {
	results := pool

	if token := strings.ToLower(strings.TrimSpace(input.Category)); token != "" && token != CategoryAll {
		var backfilled bool
		results, backfilled = filterWithBackfill(results, func(r models.MatchResult) bool {
			return strings.Contains(strings.ToLower(r.Type), token)
		}, h.config.MinResults)
		if backfilled {
			metrics.MatchBackfillApplied.WithLabelValues(string(input.Kind), "category").Inc()
		}
	}

	if term := strings.ToLower(strings.TrimSpace(input.SearchTerm)); term != "" {
		var backfilled bool
		results, backfilled = filterWithBackfill(results, func(r models.MatchResult) bool {
			return strings.Contains(strings.ToLower(r.Name), term) ||
				strings.Contains(strings.ToLower(r.Provider), term)
		}, h.config.MinResults)
		if backfilled {
			metrics.MatchBackfillApplied.WithLabelValues(string(input.Kind), "text").Inc()
		}
	}

	return results
}
