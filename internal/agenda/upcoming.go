package agenda

import (
	"slices"
	"time"

	"ker-agenda/internal/model"
)

type UpcomingOptions struct {
	// PreserveSourceOrder skips the date sort and lists records in table order.
	PreserveSourceOrder bool
}

// Upcoming selects the records dated strictly after the given date. Records are
// sorted by date with a stable sort, so same-day records keep table order.
func Upcoming(records []model.EventRecord, after time.Time, opts UpcomingOptions) []model.EventRecord {
	after = DateOf(after)
	out := make([]model.EventRecord, 0)
	for _, r := range records {
		if DateOf(r.Date).After(after) {
			out = append(out, r)
		}
	}
	if !opts.PreserveSourceOrder {
		slices.SortStableFunc(out, func(a, b model.EventRecord) int {
			return a.Date.Compare(b.Date)
		})
	}
	return out
}
