package model

import (
	"strings"
	"time"
)

// EventRecord 來源表格中的一列，經過正規化後的型別化資料
type EventRecord struct {
	Name          string    `json:"name"`
	OrganizerName string    `json:"organizer_name"`
	Category      string    `json:"category"`
	Date          time.Time `json:"date"`
	PostalCode    string    `json:"postal_code"`
	Description   string    `json:"description"`
	Media         *string   `json:"media,omitempty"`
}

// HasMedia reports whether the record carries a media reference.
func (e EventRecord) HasMedia() bool {
	return e.Media != nil
}

// Key derives a composite identity for a record. The source has no id column,
// so two rows with the same name, organizer and date share a key.
func (e EventRecord) Key() string {
	return strings.Join([]string{e.Name, e.OrganizerName, e.Date.Format(time.DateOnly)}, "|")
}

// RawRow maps a column label to the cell text. A missing key is a null cell.
type RawRow map[string]string

// FilterCriteria 使用者輸入的分類與搜尋條件，每次 render 重新建立
type FilterCriteria struct {
	Categories map[string]struct{}
	Search     string
}

func NewFilterCriteria(categories []string, search string) FilterCriteria {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return FilterCriteria{Categories: set, Search: search}
}
