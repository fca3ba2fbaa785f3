package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ker-agenda/config"
	"ker-agenda/internal/model"
	apperrors "ker-agenda/pkg/app_errors"
	"ker-agenda/pkg/logger"

	"go.uber.org/zap"
)

// SheetRepository downloads a Google Sheets worksheet as CSV.
type SheetRepository struct {
	client *http.Client
	url    string
}

func NewSheetRepository(cfg config.SourceConfig) (TableRepository, error) {
	u, err := SheetCSVURL(cfg)
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SheetRepository{
		client: &http.Client{Timeout: timeout},
		url:    u,
	}, nil
}

// SheetCSVURL returns cfg.CSVURL when set, otherwise the CSV export address of
// the worksheet named cfg.SheetName in spreadsheet cfg.SheetID.
func SheetCSVURL(cfg config.SourceConfig) (string, error) {
	if cfg.CSVURL != "" {
		return cfg.CSVURL, nil
	}
	if cfg.SheetID == "" {
		return "", fmt.Errorf("%w: SHEET_CSV_URL or SHEET_ID is required", apperrors.ErrInvalidInput)
	}
	q := url.Values{}
	q.Set("tqx", "out:csv")
	q.Set("sheet", cfg.SheetName)
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/gviz/tq?%s", url.PathEscape(cfg.SheetID), q.Encode()), nil
}

func (r *SheetRepository) LoadTable(ctx context.Context) ([]model.RawRow, error) {
	log := logger.WithComponent("repository").With(zap.String("source", "sheet"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		log.Error("Sheet download failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("Sheet download non-OK", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSourceUnavailable, resp.Status)
	}

	rows, err := decodeCSV(resp.Body)
	if err != nil {
		return nil, err
	}
	log.Debug("Sheet loaded", zap.Int("rows", len(rows)), zap.Duration("elapsed", time.Since(start)))
	return rows, nil
}
