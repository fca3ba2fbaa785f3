package handler

import (
	"fmt"
	"strings"
	"time"

	"ker-agenda/internal/model"
	apperrors "ker-agenda/pkg/app_errors"
)

// AgendaRequest 查詢參數：?category=Sport&category=Culture&q=trail&date=2024-06-11
type AgendaRequest struct {
	Categories []string `form:"category" binding:"max=100,dive,max=200"`
	Search     string   `form:"q" binding:"max=200"`
	Date       string   `form:"date"`
}

func (r AgendaRequest) Query() (model.AgendaQuery, error) {
	q := model.AgendaQuery{
		Categories: make([]string, 0, len(r.Categories)),
		Search:     strings.TrimSpace(r.Search),
	}
	for _, c := range r.Categories {
		if c != "" {
			q.Categories = append(q.Categories, c)
		}
	}
	if r.Date != "" {
		ref, err := time.Parse(time.DateOnly, r.Date)
		if err != nil {
			return model.AgendaQuery{}, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrInvalidInput)
		}
		q.Reference = ref
	}
	return q, nil
}
