package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrDataFormat        = errors.New("malformed agenda data")
	ErrSourceUnavailable = errors.New("agenda source unavailable")
	ErrInvalidInput      = errors.New("invalid input")
	ErrSnapshotMiss      = errors.New("snapshot not cached")
)

// DataFormatError reports a row whose date cell cannot be parsed.
// Row is zero-based in source order.
type DataFormatError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("row %d: column %q: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *DataFormatError) Unwrap() error { return e.Err }

func (e *DataFormatError) Is(target error) bool { return target == ErrDataFormat }
