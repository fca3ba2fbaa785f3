package service

import (
	"context"
	"time"

	"ker-agenda/config"
	"ker-agenda/internal/agenda"
	"ker-agenda/internal/export"
	"ker-agenda/internal/model"
	"ker-agenda/internal/repository"
	"ker-agenda/pkg/logger"

	"go.uber.org/zap"
)

type AgendaService interface {
	// Render 讀取一次表格並產生週曆與即將到來的活動
	Render(ctx context.Context, query model.AgendaQuery) (*model.AgendaView, error)
	// Categories 回傳表格中所有分類（依首次出現順序）
	Categories(ctx context.Context) ([]string, error)
	// Calendar 將本週起符合條件的活動輸出為 iCalendar
	Calendar(ctx context.Context, query model.AgendaQuery) (string, error)
}

type AgendaOptions struct {
	Columns             config.ColumnConfig
	TitleLimit          int
	PreserveSourceOrder bool
	Location            *time.Location
	CalendarName        string
	// Now defaults to time.Now.
	Now func() time.Time
}

type AgendaServiceImpl struct {
	repo      repository.TableRepository
	columns   config.ColumnConfig
	assembler agenda.Assembler
	upcoming  agenda.UpcomingOptions
	location  *time.Location
	calName   string
	now       func() time.Time
}

func NewAgendaService(repo repository.TableRepository, opts AgendaOptions) AgendaService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AgendaServiceImpl{
		repo:      repo,
		columns:   opts.Columns,
		assembler: agenda.NewAssembler(opts.TitleLimit),
		upcoming:  agenda.UpcomingOptions{PreserveSourceOrder: opts.PreserveSourceOrder},
		location:  opts.Location,
		calName:   opts.CalendarName,
		now:       opts.Now,
	}
}

func (s *AgendaServiceImpl) Render(ctx context.Context, query model.AgendaQuery) (*model.AgendaView, error) {
	records, universe, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := agenda.Filter(records, model.NewFilterCriteria(query.Categories, query.Search))
	today := s.today(query)
	start, end := agenda.WeekRange(today)
	buckets := agenda.PartitionByDay(filtered, start, end)

	view := &model.AgendaView{
		Today:      today,
		WeekStart:  start,
		WeekEnd:    end,
		Days:       make([]model.DayColumn, 0, 7),
		Upcoming:   make([]model.UpcomingCard, 0),
		Categories: universe,
		Selected:   query.Categories,
		Search:     query.Search,
		WeekEmpty:  len(buckets) == 0,
	}
	if len(view.Selected) == 0 {
		view.Selected = universe
	}

	for _, day := range agenda.WeekDays(start) {
		col := model.DayColumn{
			Date:    day,
			Weekday: day.Weekday().String()[:3],
			Label:   day.Format("02/01"),
			IsToday: day.Equal(today),
			Events:  make([]model.CardView, 0),
		}
		for _, r := range buckets.Day(day) {
			card, err := s.assembler.CardView(r)
			if err != nil {
				return nil, err
			}
			col.Events = append(col.Events, card)
		}
		view.Days = append(view.Days, col)
	}

	for _, r := range agenda.Upcoming(filtered, end, s.upcoming) {
		card, err := s.assembler.UpcomingView(r)
		if err != nil {
			return nil, err
		}
		view.Upcoming = append(view.Upcoming, card)
	}

	logger.WithComponent("service").Debug("Agenda rendered",
		zap.Int("records", len(records)),
		zap.Int("matching", len(filtered)),
		zap.Int("upcoming", len(view.Upcoming)),
		zap.Time("week_start", start),
	)
	return view, nil
}

func (s *AgendaServiceImpl) Categories(ctx context.Context) ([]string, error) {
	_, universe, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return universe, nil
}

func (s *AgendaServiceImpl) Calendar(ctx context.Context, query model.AgendaQuery) (string, error) {
	records, _, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	filtered := agenda.Filter(records, model.NewFilterCriteria(query.Categories, query.Search))
	start, end := agenda.WeekRange(s.today(query))

	feed := make([]model.EventRecord, 0, len(filtered))
	buckets := agenda.PartitionByDay(filtered, start, end)
	for _, day := range agenda.WeekDays(start) {
		feed = append(feed, buckets.Day(day)...)
	}
	feed = append(feed, agenda.Upcoming(filtered, end, s.upcoming)...)

	return export.ICS(feed, s.calName, s.now().UTC()), nil
}

// load reads the table exactly once and normalizes it.
func (s *AgendaServiceImpl) load(ctx context.Context) ([]model.EventRecord, []string, error) {
	log := logger.WithComponent("service")

	rows, err := s.repo.LoadTable(ctx)
	if err != nil {
		log.Error("Load table failed", zap.Error(err))
		return nil, nil, err
	}

	res, err := agenda.Normalize(rows, s.columns)
	if err != nil {
		log.Error("Normalize failed", zap.Error(err))
		return nil, nil, err
	}
	if res.MissingFields > 0 {
		log.Debug("Rows with missing fields", zap.Int("missing_fields", res.MissingFields))
	}
	return res.Records, agenda.Categories(res.Records), nil
}

func (s *AgendaServiceImpl) today(query model.AgendaQuery) time.Time {
	if !query.Reference.IsZero() {
		return agenda.DateOf(query.Reference)
	}
	return agenda.DateOf(s.now().In(s.location))
}
