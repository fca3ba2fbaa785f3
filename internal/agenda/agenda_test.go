package agenda_test

import (
	"time"

	"ker-agenda/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func names(records []model.EventRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

// sampleRecords 對應規格中的範例資料
func sampleRecords() []model.EventRecord {
	return []model.EventRecord{
		{Name: "Trail", Category: "Sport", Date: date(2024, time.June, 10), Description: "Course en forêt"},
		{Name: "Expo", Category: "Culture", Date: date(2024, time.June, 20), Description: "Peintures locales"},
	}
}
