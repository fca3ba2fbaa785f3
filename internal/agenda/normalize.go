// Package agenda turns a flat event table into the weekly grid, the upcoming
// list and their render-ready cards. Everything here is pure and works on one
// immutable snapshot per render.
package agenda

import (
	"errors"
	"strings"
	"time"

	"ker-agenda/config"
	"ker-agenda/internal/model"
	apperrors "ker-agenda/pkg/app_errors"
)

// NormalizeResult carries the records and how many required text cells were
// missing and replaced by empty strings.
type NormalizeResult struct {
	Records       []model.EventRecord
	MissingFields int
}

// Normalize parses raw rows into records, in source order. A row whose date
// cannot be parsed aborts the whole pass with a *DataFormatError.
func Normalize(rows []model.RawRow, cols config.ColumnConfig) (NormalizeResult, error) {
	layout := cols.DateLayout
	if layout == "" {
		layout = config.DefaultColumns().DateLayout
	}

	res := NormalizeResult{Records: make([]model.EventRecord, 0, len(rows))}
	for i, row := range rows {
		raw, ok := row[cols.Date]
		value := strings.TrimSpace(raw)
		if !ok || value == "" {
			return NormalizeResult{}, &apperrors.DataFormatError{Row: i, Column: cols.Date, Value: raw, Err: errMissingDate}
		}
		d, err := time.Parse(layout, value)
		if err != nil {
			return NormalizeResult{}, &apperrors.DataFormatError{Row: i, Column: cols.Date, Value: raw, Err: err}
		}

		text := func(col string) string {
			v, ok := row[col]
			if !ok {
				res.MissingFields++
			}
			return v
		}

		res.Records = append(res.Records, model.EventRecord{
			Name:          text(cols.Name),
			OrganizerName: text(cols.Organizer),
			Category:      text(cols.Category),
			Date:          DateOf(d),
			PostalCode:    text(cols.PostalCode),
			Description:   text(cols.Description),
			Media:         optional(row, cols.Media),
		})
	}
	return res, nil
}

// optional maps an absent, empty or blank cell to nil.
func optional(row model.RawRow, col string) *string {
	v, ok := row[col]
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

var errMissingDate = errors.New("date is missing")
