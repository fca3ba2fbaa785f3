package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ker-agenda/config"
	"ker-agenda/internal/cache"
	"ker-agenda/internal/database"
	"ker-agenda/internal/handler"
	"ker-agenda/internal/repository"
	"ker-agenda/internal/service"
	"ker-agenda/internal/style"
	"ker-agenda/internal/worker"
	"ker-agenda/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env 不存在時直接使用環境變數
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	log := logger.WithComponent("main")
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warn("Invalid LOG_LEVEL, keeping info", zap.String("level", cfg.Log.Level))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := time.LoadLocation(cfg.Agenda.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone", zap.String("timezone", cfg.Agenda.Timezone), zap.Error(err))
	}

	pageStyle, err := style.Load(cfg.Agenda.StylePath)
	if err != nil {
		log.Fatal("Failed to load style", zap.String("path", cfg.Agenda.StylePath), zap.Error(err))
	}

	repo, closeSource := newTableRepository(ctx, cfg)
	defer closeSource()

	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(ctx, &cfg.Redis)
		if err != nil {
			log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		defer rdb.Close()

		snapshots := cache.NewTableSnapshotCache(rdb, repo, cfg.Redis.SnapshotTTL)
		refresher := worker.NewSnapshotWorker(snapshots, cfg.Agenda.RefreshCron, cfg.Source.Timeout)
		if err := refresher.Start(ctx); err != nil {
			log.Fatal("Failed to start snapshot worker", zap.Error(err))
		}
		repo = snapshots
	}

	agendaService := service.NewAgendaService(repo, service.AgendaOptions{
		Columns:             cfg.Columns,
		TitleLimit:          cfg.Agenda.TitleLimit,
		PreserveSourceOrder: cfg.Agenda.PreserveSourceOrder,
		Location:            loc,
		CalendarName:        cfg.Agenda.SiteTitle,
	})

	pageHandler, err := handler.NewPageHandler(agendaService, handler.PageConfig{
		Title:         cfg.Agenda.SiteTitle,
		SubmitFormURL: cfg.Agenda.SubmitFormURL,
		Style:         pageStyle,
	})
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}

	router := handler.NewRouter(cfg.Server, handler.NewAgendaHandler(agendaService), pageHandler)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr), zap.String("source", cfg.Source.Kind))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	_ = logger.L.Sync()
}

// newTableRepository 依 SOURCE_KIND 選擇資料來源
func newTableRepository(ctx context.Context, cfg *config.Config) (repository.TableRepository, func()) {
	log := logger.WithComponent("main")

	switch cfg.Source.Kind {
	case config.SourceFile:
		return repository.NewFileRepository(cfg.Source.FilePath), func() {}
	case config.SourcePostgres:
		pool, err := database.InitDatabase(ctx, &cfg.Database)
		if err != nil {
			log.Fatal("Failed to initialize database", zap.Error(err))
		}
		if err := repository.EnsureTable(ctx, pool, cfg.Database.Table); err != nil {
			pool.Close()
			log.Fatal("Failed to prepare table", zap.String("table", cfg.Database.Table), zap.Error(err))
		}
		return repository.NewPostgresTableRepository(pool, cfg.Database.Table, cfg.Columns), pool.Close
	case config.SourceSheet:
		repo, err := repository.NewSheetRepository(cfg.Source)
		if err != nil {
			log.Fatal("Invalid sheet source", zap.Error(err))
		}
		return repo, func() {}
	default:
		log.Fatal("Unknown SOURCE_KIND", zap.String("kind", cfg.Source.Kind))
		return nil, nil
	}
}
