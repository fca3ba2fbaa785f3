package repository_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"ker-agenda/config"
	"ker-agenda/internal/repository"
	apperrors "ker-agenda/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheetCSV = "\ufeffNom de l'évènement,Nom de l'entreprise ou de l'association,Catégorie de l'évènement,Date de l'événement,Code postal de l'évènement,Description de l'évènement,Média(s)\n" +
	"Trail,Club Athlé,Sport,10/06/2024,22300,\"Boucles, 10 km\",\n" +
	",,,,,,\n" +
	"Expo,Galerie,Culture,20/06/2024,22000,Peintures,photo.jpg\n"

func TestSheetRepository_LoadTable(t *testing.T) {
	cols := config.DefaultColumns()

	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte(sheetCSV))
		}))
		defer srv.Close()

		repo, err := repository.NewSheetRepository(config.SourceConfig{CSVURL: srv.URL})
		require.NoError(t, err)

		rows, err := repo.LoadTable(context.Background())

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Trail", rows[0][cols.Name])
		assert.Equal(t, "Boucles, 10 km", rows[0][cols.Description])
		assert.Equal(t, "10/06/2024", rows[0][cols.Date])
		_, hasMedia := rows[0][cols.Media]
		assert.False(t, hasMedia)
		assert.Equal(t, "photo.jpg", rows[1][cols.Media])
	})

	t.Run("Failed - upstream error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		defer srv.Close()

		repo, err := repository.NewSheetRepository(config.SourceConfig{CSVURL: srv.URL})
		require.NoError(t, err)

		_, err = repo.LoadTable(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
	})

	t.Run("Failed - canceled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(sheetCSV))
		}))
		defer srv.Close()

		repo, err := repository.NewSheetRepository(config.SourceConfig{CSVURL: srv.URL})
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = repo.LoadTable(ctx)

		assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
	})
}

func TestSheetCSVURL(t *testing.T) {
	u, err := repository.SheetCSVURL(config.SourceConfig{SheetID: "abc123", SheetName: "db"})
	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc123/gviz/tq?sheet=db&tqx=out%3Acsv", u)

	u, err = repository.SheetCSVURL(config.SourceConfig{CSVURL: "https://example.org/x.csv", SheetID: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/x.csv", u)

	_, err = repository.SheetCSVURL(config.SourceConfig{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestFileRepository_LoadTable(t *testing.T) {
	dir := t.TempDir()

	t.Run("Success", func(t *testing.T) {
		path := filepath.Join(dir, "agenda.csv")
		require.NoError(t, os.WriteFile(path, []byte(sheetCSV), 0o600))

		rows, err := repository.NewFileRepository(path).LoadTable(context.Background())

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("Success - empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		rows, err := repository.NewFileRepository(path).LoadTable(context.Background())

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("Failed - malformed csv", func(t *testing.T) {
		path := filepath.Join(dir, "bad.csv")
		require.NoError(t, os.WriteFile(path, []byte("a,b\n\"unterminated,x\n"), 0o600))

		_, err := repository.NewFileRepository(path).LoadTable(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrDataFormat)
	})

	t.Run("Failed - missing file", func(t *testing.T) {
		_, err := repository.NewFileRepository(filepath.Join(dir, "nope.csv")).LoadTable(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
	})
}
