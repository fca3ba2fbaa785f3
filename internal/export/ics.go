package export

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"ker-agenda/internal/model"

	ics "github.com/arran4/golang-ical"
)

const ProductID = "-//KER//Agenda des evenements//FR"

// UID is stable across refreshes as long as name, organizer and date do not
// change. occurrence numbers records sharing one key in a feed; the first
// (occurrence <= 1) keeps the bare key.
func UID(r model.EventRecord, occurrence int) string {
	key := r.Key()
	if occurrence > 1 {
		key += "#" + strconv.Itoa(occurrence)
	}
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8]) + "@ker-agenda"
}

// ICS serializes records as all-day events of a published calendar.
func ICS(records []model.EventRecord, name string, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	seen := make(map[string]int, len(records))
	for _, r := range records {
		seen[r.Key()]++
		ev := cal.AddEvent(UID(r, seen[r.Key()]))
		ev.SetDtStampTime(stamp)
		ev.SetAllDayStartAt(r.Date)
		ev.SetAllDayEndAt(r.Date.AddDate(0, 0, 1))
		ev.SetSummary(r.Name)
		if r.PostalCode != "" {
			ev.SetLocation(r.PostalCode)
		}
		if r.Category != "" {
			ev.AddProperty(ics.ComponentPropertyCategories, r.Category)
		}
		ev.SetDescription(description(r))
	}
	return cal.Serialize()
}

func description(r model.EventRecord) string {
	lines := make([]string, 0, 3)
	if r.OrganizerName != "" {
		lines = append(lines, r.OrganizerName)
	}
	if r.Description != "" {
		lines = append(lines, r.Description)
	}
	if r.Media != nil {
		lines = append(lines, "Média(s): "+*r.Media)
	}
	return strings.Join(lines, "\n")
}
