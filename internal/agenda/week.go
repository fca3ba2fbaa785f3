package agenda

import (
	"time"

	"ker-agenda/internal/model"
)

const daysPerWeek = 7

// DateOf drops the time of day, keeping the calendar date as seen in t's own
// location. The result is midnight UTC so dates compare with == and key maps.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekRange returns the Monday and Sunday of the week containing ref.
func WeekRange(ref time.Time) (start, end time.Time) {
	day := DateOf(ref)
	offset := (int(day.Weekday()) + 6) % daysPerWeek // Monday = 0
	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, daysPerWeek-1)
	return start, end
}

// WeekDays lists the seven dates starting at start.
func WeekDays(start time.Time) []time.Time {
	days := make([]time.Time, daysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekBucket groups records by calendar day. Days without events have no
// entry; Day still answers them with an empty slice.
type WeekBucket map[time.Time][]model.EventRecord

func (b WeekBucket) Day(d time.Time) []model.EventRecord {
	return b[DateOf(d)]
}

// PartitionByDay buckets the records dated within [start, end]. Within a day
// the input order is kept.
func PartitionByDay(records []model.EventRecord, start, end time.Time) WeekBucket {
	start, end = DateOf(start), DateOf(end)
	buckets := make(WeekBucket)
	for _, r := range records {
		d := DateOf(r.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		buckets[d] = append(buckets[d], r)
	}
	return buckets
}
