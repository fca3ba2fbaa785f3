package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"ker-agenda/internal/model"
	apperrors "ker-agenda/pkg/app_errors"
)

// decodeCSV reads a header line followed by data lines. Empty cells are left
// out of the row, the same as a null cell in the sheet.
func decodeCSV(r io.Reader) ([]model.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []model.RawRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", apperrors.ErrDataFormat, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	table := make([]model.RawRow, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrDataFormat, err)
		}
		if isBlank(record) {
			continue
		}

		row := make(model.RawRow, len(header))
		for i, cell := range record {
			if i >= len(header) || cell == "" {
				continue
			}
			row[header[i]] = cell
		}
		table = append(table, row)
	}
	return table, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
