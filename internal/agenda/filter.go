package agenda

import (
	"strings"

	"ker-agenda/internal/model"
)

// Filter keeps the records matching both the category set and the search term,
// preserving their relative order. An empty category set does not restrict.
func Filter(records []model.EventRecord, criteria model.FilterCriteria) []model.EventRecord {
	term := strings.ToLower(criteria.Search)
	out := make([]model.EventRecord, 0, len(records))
	for _, r := range records {
		if !matchCategory(r, criteria.Categories) {
			continue
		}
		if term != "" && !matchSearch(r, term) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchCategory(r model.EventRecord, set map[string]struct{}) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[r.Category]
	return ok
}

// matchSearch expects term already lower-cased.
func matchSearch(r model.EventRecord, term string) bool {
	return strings.Contains(strings.ToLower(r.Name), term) ||
		strings.Contains(strings.ToLower(r.Description), term)
}

// Categories returns the distinct categories in first-seen order.
func Categories(records []model.EventRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}
