package repository

import (
	"context"
	"fmt"
	"os"

	"ker-agenda/internal/model"
	apperrors "ker-agenda/pkg/app_errors"
)

// FileRepository reads the agenda table from a local CSV export.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) TableRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) LoadTable(_ context.Context) ([]model.RawRow, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	defer f.Close()
	return decodeCSV(f)
}
