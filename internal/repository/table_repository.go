package repository

import (
	"context"
	"fmt"

	"ker-agenda/config"
	"ker-agenda/internal/model"
	apperrors "ker-agenda/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TableRepository 讀取活動表格的外部來源，每次 render 只呼叫一次且不寫入
type TableRepository interface {
	LoadTable(ctx context.Context) ([]model.RawRow, error)
}

// PostgresTableRepository reads the agenda table mirrored into Postgres. The
// date column stays text so the same strict parse applies as for the sheet.
type PostgresTableRepository struct {
	pool    *pgxpool.Pool
	table   string
	columns config.ColumnConfig
}

func NewPostgresTableRepository(pool *pgxpool.Pool, table string, columns config.ColumnConfig) TableRepository {
	return &PostgresTableRepository{
		pool:    pool,
		table:   table,
		columns: columns,
	}
}

func (r *PostgresTableRepository) LoadTable(ctx context.Context) ([]model.RawRow, error) {
	query := fmt.Sprintf(`
		SELECT name, organizer_name, category, event_date, postal_code, description, media
		FROM %s
		ORDER BY row_num ASC
	`, pgx.Identifier{r.table}.Sanitize())

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	table := make([]model.RawRow, 0)
	for rows.Next() {
		var name, organizer, category, date, postalCode, description, media *string
		err := rows.Scan(
			&name,
			&organizer,
			&category,
			&date,
			&postalCode,
			&description,
			&media,
		)
		if err != nil {
			return nil, err
		}

		row := make(model.RawRow, 7)
		r.set(row, r.columns.Name, name)
		r.set(row, r.columns.Organizer, organizer)
		r.set(row, r.columns.Category, category)
		r.set(row, r.columns.Date, date)
		r.set(row, r.columns.PostalCode, postalCode)
		r.set(row, r.columns.Description, description)
		r.set(row, r.columns.Media, media)
		table = append(table, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	return table, nil
}

// set leaves NULL cells out of the row.
func (r *PostgresTableRepository) set(row model.RawRow, column string, value *string) {
	if value != nil {
		row[column] = *value
	}
}

// EnsureTable creates the mirror table when it does not exist yet.
func EnsureTable(ctx context.Context, pool *pgxpool.Pool, table string) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			row_num        SERIAL PRIMARY KEY,
			name           TEXT,
			organizer_name TEXT,
			category       TEXT,
			event_date     TEXT,
			postal_code    TEXT,
			description    TEXT,
			media          TEXT
		)
	`, pgx.Identifier{table}.Sanitize())
	_, err := pool.Exec(ctx, query)
	return err
}
