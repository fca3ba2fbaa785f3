package handler

import (
	"errors"
	"net/http"

	"ker-agenda/internal/service"
	apperrors "ker-agenda/pkg/app_errors"
	"ker-agenda/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AgendaHandler struct {
	service service.AgendaService
}

func NewAgendaHandler(service service.AgendaService) *AgendaHandler {
	return &AgendaHandler{service: service}
}

func (h *AgendaHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("agenda", h.GetAgenda)
		router.GET("agenda.ics", h.GetCalendar)
		router.GET("categories", h.ListCategories)
	}
}

func (h *AgendaHandler) GetAgenda(c *gin.Context) {
	var req AgendaRequest
	if err := BindQuery(c, &req); err != nil {
		return
	}
	query, err := req.Query()
	if err != nil {
		h.handleError(c, err, "GetAgenda")
		return
	}
	view, err := h.service.Render(c, query)
	if err != nil {
		h.handleError(c, err, "GetAgenda")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AgendaHandler) GetCalendar(c *gin.Context) {
	var req AgendaRequest
	if err := BindQuery(c, &req); err != nil {
		return
	}
	query, err := req.Query()
	if err != nil {
		h.handleError(c, err, "GetCalendar")
		return
	}
	body, err := h.service.Calendar(c, query)
	if err != nil {
		h.handleError(c, err, "GetCalendar")
		return
	}
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

func (h *AgendaHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.Categories(c)
	if err != nil {
		h.handleError(c, err, "ListCategories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *AgendaHandler) handleError(c *gin.Context, err error, operation string) {
	status, msg := errorStatus(err, operation)
	c.JSON(status, gin.H{"error": msg})
}

// errorStatus 依錯誤種類決定狀態碼並記錄 log
func errorStatus(err error, operation string) (int, string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		return http.StatusBadRequest, "Invalid input"
	case errors.Is(err, apperrors.ErrDataFormat):
		log.Error("Malformed agenda data")
		return http.StatusBadGateway, "Malformed agenda data"
	case errors.Is(err, apperrors.ErrSourceUnavailable):
		log.Error("Agenda source unavailable")
		return http.StatusServiceUnavailable, "Agenda source unavailable"
	default:
		log.Error("Unexpected error")
		return http.StatusInternalServerError, "Internal server error"
	}
}
