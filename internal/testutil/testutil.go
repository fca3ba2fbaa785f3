package testutil

import (
	"context"
	"testing"
	"time"

	"ker-agenda/config"
	"ker-agenda/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const connectTimeout = 2 * time.Second

// SetupDatabase 連到 LoadTestConfig 指定的 Postgres，連不到時略過測試
func SetupDatabase(t *testing.T) (*pgxpool.Pool, *config.Config) {
	t.Helper()
	cfg := config.LoadTestConfig()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	pool, err := database.InitDatabase(ctx, &cfg.Database)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	t.Logf("Test database connected: %s:%s", cfg.Database.Host, cfg.Database.Port)
	t.Cleanup(pool.Close)

	return pool, cfg
}

// SetupRedis 僅初始化 Redis，用於 snapshot cache 的整合測試
func SetupRedis(t *testing.T) *redis.Client {
	t.Helper()
	cfg := config.LoadTestConfig()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	rdb, err := database.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		t.Skipf("test redis unavailable: %v", err)
	}
	t.Cleanup(func() { rdb.Close() })

	return rdb
}
