package agenda_test

import (
	"testing"
	"time"

	"ker-agenda/internal/agenda"
	"ker-agenda/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekRange(t *testing.T) {
	t.Run("Tuesday", func(t *testing.T) {
		start, end := agenda.WeekRange(date(2024, time.June, 11))
		assert.Equal(t, date(2024, time.June, 10), start)
		assert.Equal(t, date(2024, time.June, 16), end)
	})

	t.Run("Sunday belongs to the week before", func(t *testing.T) {
		start, end := agenda.WeekRange(date(2024, time.June, 16))
		assert.Equal(t, date(2024, time.June, 10), start)
		assert.Equal(t, date(2024, time.June, 16), end)
	})

	t.Run("time of day and location are ignored", func(t *testing.T) {
		paris, err := time.LoadLocation("Europe/Paris")
		require.NoError(t, err)
		start, _ := agenda.WeekRange(time.Date(2024, time.March, 31, 23, 30, 0, 0, paris))
		assert.Equal(t, date(2024, time.March, 25), start)
	})

	t.Run("every day of two years", func(t *testing.T) {
		for d := date(2023, time.January, 1); d.Year() < 2025; d = d.AddDate(0, 0, 1) {
			start, end := agenda.WeekRange(d)
			require.Equal(t, time.Monday, start.Weekday(), d)
			require.Equal(t, start.AddDate(0, 0, 6), end, d)
			require.False(t, d.Before(start), d)
			require.False(t, d.After(end), d)
		}
	})
}

func TestWeekDays(t *testing.T) {
	days := agenda.WeekDays(date(2024, time.December, 30))
	require.Len(t, days, 7)
	assert.Equal(t, date(2024, time.December, 30), days[0])
	assert.Equal(t, date(2025, time.January, 5), days[6])
}

func TestPartitionByDay(t *testing.T) {
	start, end := agenda.WeekRange(date(2024, time.June, 11))

	t.Run("mid-week reference", func(t *testing.T) {
		buckets := agenda.PartitionByDay(sampleRecords(), start, end)

		require.Len(t, buckets, 1)
		assert.Equal(t, []string{"Trail"}, names(buckets.Day(date(2024, time.June, 10))))
		assert.Empty(t, buckets.Day(date(2024, time.June, 12)))
	})

	t.Run("stable partition with inclusive bounds", func(t *testing.T) {
		records := []model.EventRecord{
			{Name: "before", Date: date(2024, time.June, 9)},
			{Name: "sun-1", Date: date(2024, time.June, 16)},
			{Name: "mon-1", Date: date(2024, time.June, 10)},
			{Name: "sun-2", Date: date(2024, time.June, 16)},
			{Name: "after", Date: date(2024, time.June, 17)},
			{Name: "mon-2", Date: date(2024, time.June, 10)},
		}

		buckets := agenda.PartitionByDay(records, start, end)

		assert.Equal(t, []string{"mon-1", "mon-2"}, names(buckets.Day(start)))
		assert.Equal(t, []string{"sun-1", "sun-2"}, names(buckets.Day(end)))
		total := 0
		for day, events := range buckets {
			for _, e := range events {
				assert.Equal(t, day, e.Date)
			}
			total += len(events)
		}
		assert.Equal(t, 4, total)
	})

	t.Run("empty input", func(t *testing.T) {
		buckets := agenda.PartitionByDay(nil, start, end)
		assert.Empty(t, buckets)
		for _, d := range agenda.WeekDays(start) {
			assert.Empty(t, buckets.Day(d))
		}
	})
}
