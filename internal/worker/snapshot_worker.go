package worker

import (
	"context"
	"ker-agenda/internal/cache"
	"ker-agenda/pkg/logger"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type SnapshotWorker interface {
	// 依排程刷新表格快取，ctx 結束時停止
	Start(ctx context.Context) error
	// 立即刷新一次
	RunOnce(ctx context.Context) error
}

type SnapshotWorkerImpl struct {
	snapshots cache.TableSnapshotCache
	schedule  string
	timeout   time.Duration

	// 同一時間只跑一個刷新
	mu sync.Mutex
}

func NewSnapshotWorker(snapshots cache.TableSnapshotCache, schedule string, timeout time.Duration) SnapshotWorker {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SnapshotWorkerImpl{
		snapshots: snapshots,
		schedule:  schedule,
		timeout:   timeout,
	}
}

func (w *SnapshotWorkerImpl) Start(ctx context.Context) error {
	log := logger.WithComponent("worker")

	c := cron.New()
	_, err := c.AddFunc(w.schedule, func() {
		if err := w.RunOnce(ctx); err != nil {
			log.Error("Snapshot refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	// 上一次部署留下的快照可能用了不同的欄位設定，先清掉再暖快取
	if err := w.snapshots.Invalidate(ctx); err != nil {
		log.Warn("Stale snapshot invalidation failed", zap.Error(err))
	}
	if err := w.RunOnce(ctx); err != nil {
		log.Warn("Initial snapshot refresh failed", zap.Error(err))
	}

	c.Start()
	log.Info("Snapshot worker started", zap.String("schedule", w.schedule))

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		log.Info("Snapshot worker stopped")
	}()
	return nil
}

func (w *SnapshotWorkerImpl) RunOnce(ctx context.Context) error {
	if !w.mu.TryLock() {
		return nil
	}
	defer w.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	rows, err := w.snapshots.Refresh(ctx)
	if err != nil {
		return err
	}
	logger.WithComponent("worker").Debug("Snapshot refreshed",
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
