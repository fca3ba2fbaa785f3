package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ker-agenda/internal/model"
	"ker-agenda/internal/repository"
	apperrors "ker-agenda/pkg/app_errors"
	"ker-agenda/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const SnapshotKey = "agenda:table:snapshot"

type snapshot struct {
	LoadedAt time.Time      `json:"loaded_at"`
	Rows     []model.RawRow `json:"rows"`
}

// TableSnapshotCache 將來源表格快取在 Redis，本身也是一個 TableRepository
type TableSnapshotCache interface {
	repository.TableRepository
	// 重新從來源讀取並覆寫快取
	Refresh(ctx context.Context) ([]model.RawRow, error)
	// 讀取快取；沒有快取時回傳 ErrSnapshotMiss
	Cached(ctx context.Context) ([]model.RawRow, time.Time, error)
	Invalidate(ctx context.Context) error
}

type TableSnapshotCacheImpl struct {
	client *redis.Client
	source repository.TableRepository
	ttl    time.Duration
}

func NewTableSnapshotCache(client *redis.Client, source repository.TableRepository, ttl time.Duration) TableSnapshotCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TableSnapshotCacheImpl{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

// LoadTable returns the cached snapshot, loading it on a miss. Each call
// decodes its own copy, so concurrent renders never share rows.
func (c *TableSnapshotCacheImpl) LoadTable(ctx context.Context) ([]model.RawRow, error) {
	log := logger.WithComponent("cache")

	rows, _, err := c.Cached(ctx)
	switch {
	case err == nil:
		return rows, nil
	case errors.Is(err, apperrors.ErrSnapshotMiss):
		log.Debug("Snapshot miss")
		return c.Refresh(ctx)
	default:
		// Redis 掛掉時直接讀來源，不讓頁面失敗
		log.Warn("Snapshot read failed, reading source", zap.Error(err))
		return c.source.LoadTable(ctx)
	}
}

func (c *TableSnapshotCacheImpl) Cached(ctx context.Context) ([]model.RawRow, time.Time, error) {
	data, err := c.client.Get(ctx, SnapshotKey).Bytes()
	if err == redis.Nil {
		return nil, time.Time{}, apperrors.ErrSnapshotMiss
	}
	if err != nil {
		return nil, time.Time{}, err
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Rows == nil {
		snap.Rows = []model.RawRow{}
	}
	return snap.Rows, snap.LoadedAt, nil
}

func (c *TableSnapshotCacheImpl) Refresh(ctx context.Context) ([]model.RawRow, error) {
	rows, err := c.source.LoadTable(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(snapshot{LoadedAt: time.Now().UTC(), Rows: rows})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := c.client.Set(ctx, SnapshotKey, data, c.ttl).Err(); err != nil {
		logger.WithComponent("cache").Warn("Snapshot write failed", zap.Error(err))
	}
	return rows, nil
}

func (c *TableSnapshotCacheImpl) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, SnapshotKey).Err()
}
