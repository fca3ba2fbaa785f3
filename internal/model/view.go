package model

import (
	"html/template"
	"time"
)

// CardView is the render-ready content of one event in a day column.
type CardView struct {
	Title   string        `json:"title"`
	Tooltip template.HTML `json:"tooltip_html"`
	Event   EventRecord   `json:"event"`
}

// UpcomingCard is the render-ready content of one event in the upcoming list.
type UpcomingCard struct {
	HTML  template.HTML `json:"html"`
	Event EventRecord   `json:"event"`
}

// DayColumn 週曆中的一天，沒有活動時 Events 為空
type DayColumn struct {
	Date    time.Time  `json:"date"`
	Weekday string     `json:"weekday"`
	Label   string     `json:"label"`
	IsToday bool       `json:"is_today"`
	Events  []CardView `json:"events"`
}

type AgendaView struct {
	Today      time.Time      `json:"today"`
	WeekStart  time.Time      `json:"week_start"`
	WeekEnd    time.Time      `json:"week_end"`
	Days       []DayColumn    `json:"days"`
	Upcoming   []UpcomingCard `json:"upcoming"`
	Categories []string       `json:"categories"`
	Selected   []string       `json:"selected"`
	Search     string         `json:"search"`
	// WeekEmpty is true when no day of the current week holds a matching event.
	WeekEmpty bool `json:"week_empty"`
}

// AgendaQuery is the transient user input of one render.
type AgendaQuery struct {
	Categories []string
	Search     string
	// Reference overrides today's date; zero means now.
	Reference time.Time
}
