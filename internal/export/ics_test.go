package export_test

import (
	"strings"
	"testing"
	"time"

	"ker-agenda/internal/export"
	"ker-agenda/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestICS(t *testing.T) {
	media := "photo.jpg"
	records := []model.EventRecord{
		{Name: "Trail", OrganizerName: "Club", Category: "Sport", Date: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), PostalCode: "22300"},
		{Name: "Expo", Category: "Culture", Date: time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC), Media: &media},
	}

	body := export.ICS(records, "KER", time.Date(2024, time.June, 11, 8, 0, 0, 0, time.UTC))

	for _, field := range []string{
		"BEGIN:VCALENDAR",
		"METHOD:PUBLISH",
		"PRODID:" + export.ProductID,
		"SUMMARY:Trail",
		"SUMMARY:Expo",
		"DTSTART;VALUE=DATE:20240610",
		"DTEND;VALUE=DATE:20240611",
		"DTSTART;VALUE=DATE:20240620",
		"LOCATION:22300",
		"UID:" + export.UID(records[0], 1),
		"END:VCALENDAR",
	} {
		assert.Contains(t, body, field)
	}
	assert.Equal(t, 2, strings.Count(body, "BEGIN:VEVENT"))
}

func TestUID(t *testing.T) {
	a := model.EventRecord{Name: "Trail", OrganizerName: "Club", Date: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)}
	b := a
	b.Description = "changed description"
	c := a
	c.Date = c.Date.AddDate(0, 0, 1)

	assert.Equal(t, export.UID(a, 1), export.UID(b, 1))
	assert.Equal(t, export.UID(a, 0), export.UID(a, 1))
	assert.NotEqual(t, export.UID(a, 1), export.UID(a, 2))
	assert.NotEqual(t, export.UID(a, 1), export.UID(c, 1))
	assert.True(t, strings.HasSuffix(export.UID(a, 1), "@ker-agenda"))
}

func TestICS_SameKeyGetsDistinctUIDs(t *testing.T) {
	day := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	records := []model.EventRecord{
		{Name: "Trail", OrganizerName: "Club", Date: day, Description: "Matin"},
		{Name: "Trail", OrganizerName: "Club", Date: day, Description: "Après-midi"},
		{Name: "Trail", OrganizerName: "Club", Date: day, Description: "Soir"},
	}

	body := export.ICS(records, "KER", day)

	first := "UID:" + export.UID(records[0], 1)
	assert.Equal(t, 1, strings.Count(body, first))
	assert.Equal(t, 1, strings.Count(body, "UID:"+export.UID(records[1], 2)))
	assert.Equal(t, 1, strings.Count(body, "UID:"+export.UID(records[2], 3)))
	assert.Equal(t, 3, strings.Count(body, "BEGIN:VEVENT"))
}

func TestICS_Empty(t *testing.T) {
	body := export.ICS(nil, "", time.Now())

	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.NotContains(t, body, "BEGIN:VEVENT")
}
