// Package report implements the filter and aggregation pipeline over the
// dealer dataset.
package report

import "github.com/sells-group/dealer-insights/internal/model"

// Filter returns the dealers matching the criteria, preserving input
// order. All predicates are conjunctive: rating within the inclusive
// range, province in the allowed set, and (unless the criteria name
// AllDealers) an exact case-sensitive name match. An empty result is
// valid, not an error. Filtering an already-filtered slice with the same
// criteria returns the same slice contents.
func Filter(dealers []model.Dealer, criteria model.FilterCriteria) []model.Dealer {
	filtered := make([]model.Dealer, 0, len(dealers))
	for _, d := range dealers {
		if d.Rating < criteria.MinRating || d.Rating > criteria.MaxRating {
			continue
		}
		if !criteria.AllowsProvince(d.Province) {
			continue
		}
		if criteria.Dealer != model.AllDealers && criteria.Dealer != "" && d.Name != criteria.Dealer {
			continue
		}
		// StartDate/EndDate intentionally not applied; see FilterCriteria.
		filtered = append(filtered, d)
	}
	return filtered
}
