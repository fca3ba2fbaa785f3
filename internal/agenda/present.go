package agenda

import (
	"bytes"
	"html/template"

	"ker-agenda/internal/model"
)

const (
	DefaultTitleLimit = 30
	ellipsis          = "..."
)

// Every field below comes from the public submission form and is escaped by
// html/template when the fragments are executed.
var (
	tooltipTmpl = template.Must(template.New("tooltip").Parse(`<div>
<strong>{{.Name}}</strong><br>
🏢 {{.Organizer}}<br>
📍 {{.PostalCode}}<br>
<strong>Catégorie:</strong> {{.Category}}<br>
<br>
{{.Description}}<br>
{{if .HasMedia}}<strong>Média(s):</strong> {{.Media}}{{end}}
</div>`))

	upcomingTmpl = template.Must(template.New("upcoming").Parse(`<div class="upcoming-event-card">
<div class="event-time">{{.Name}}</div>
<div>📍 {{.PostalCode}} | 🏢 {{.Organizer}}</div>
<div><strong>Catégorie:</strong> {{.Category}}</div>
<div>{{.Description}}</div>
{{if .HasMedia}}<div><strong>Média(s):</strong> {{.Media}}</div>{{end}}
</div>`))
)

type fragmentData struct {
	Name        string
	Organizer   string
	PostalCode  string
	Category    string
	Description string
	HasMedia    bool
	Media       string
}

func newFragmentData(r model.EventRecord) fragmentData {
	d := fragmentData{
		Name:        r.Name,
		Organizer:   r.OrganizerName,
		PostalCode:  r.PostalCode,
		Category:    r.Category,
		Description: r.Description,
	}
	if r.Media != nil {
		d.HasMedia = true
		d.Media = *r.Media
	}
	return d
}

// Assembler builds the card and tooltip content of single events.
type Assembler struct {
	TitleLimit int
}

func NewAssembler(titleLimit int) Assembler {
	if titleLimit <= 0 {
		titleLimit = DefaultTitleLimit
	}
	return Assembler{TitleLimit: titleLimit}
}

// TruncateTitle keeps the first limit characters and always appends "...",
// short names included.
func (a Assembler) TruncateTitle(name string) string {
	runes := []rune(name)
	if len(runes) > a.TitleLimit {
		runes = runes[:a.TitleLimit]
	}
	return string(runes) + ellipsis
}

// CardView returns the day-column card of r. Title is plain text; Tooltip is
// already-escaped markup.
func (a Assembler) CardView(r model.EventRecord) (model.CardView, error) {
	tooltip, err := execute(tooltipTmpl, newFragmentData(r))
	if err != nil {
		return model.CardView{}, err
	}
	return model.CardView{
		Title:   a.TruncateTitle(r.Name),
		Tooltip: tooltip,
		Event:   r,
	}, nil
}

// UpcomingView returns the upcoming-list card of r.
func (a Assembler) UpcomingView(r model.EventRecord) (model.UpcomingCard, error) {
	html, err := execute(upcomingTmpl, newFragmentData(r))
	if err != nil {
		return model.UpcomingCard{}, err
	}
	return model.UpcomingCard{HTML: html, Event: r}, nil
}

func execute(t *template.Template, data fragmentData) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
