package handler

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"slices"

	"ker-agenda/internal/model"
	"ker-agenda/internal/service"
	"ker-agenda/internal/style"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

const calendarPath = "/api/v1/agenda.ics"

// PageConfig is fixed at startup.
type PageConfig struct {
	Title         string
	SubmitFormURL string
	Style         style.Style
}

type pageData struct {
	PageConfig
	View  *model.AgendaView
	Error string
}

type PageHandler struct {
	service service.AgendaService
	page    PageConfig
	tmpl    *template.Template
}

func NewPageHandler(service service.AgendaService, page PageConfig) (*PageHandler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"selected":    func(list []string, v string) bool { return slices.Contains(list, v) },
		"calendarURL": calendarURL,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{service: service, page: page, tmpl: tmpl}, nil
}

func (h *PageHandler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(h.tmpl)
	r.GET("/", h.Index)
}

func (h *PageHandler) Index(c *gin.Context) {
	var req AgendaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.HTML(http.StatusBadRequest, "agenda.html", pageData{PageConfig: h.page, Error: "Requête invalide"})
		return
	}
	query, err := req.Query()
	if err != nil {
		status, _ := errorStatus(err, "Index")
		c.HTML(status, "agenda.html", pageData{PageConfig: h.page, Error: "Date invalide"})
		return
	}
	view, err := h.service.Render(c, query)
	if err != nil {
		status, _ := errorStatus(err, "Index")
		c.HTML(status, "agenda.html", pageData{PageConfig: h.page, Error: "L'agenda est momentanément indisponible"})
		return
	}
	c.HTML(http.StatusOK, "agenda.html", pageData{PageConfig: h.page, View: view})
}

// calendarURL 讓 iCal 訂閱沿用頁面目前的分類與搜尋條件
func calendarURL(categories []string, search string) string {
	q := url.Values{}
	for _, c := range categories {
		q.Add("category", c)
	}
	if search != "" {
		q.Set("q", search)
	}
	if len(q) == 0 {
		return calendarPath
	}
	return calendarPath + "?" + q.Encode()
}
