// Package redis はキャッシュ用のRedisクライアント初期化を提供します。
package redis

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured はREDIS_HOSTが未設定のときに返されます。
var ErrNotConfigured = errors.New("redis: REDIS_HOST is not set")

const defaultCacheTTL = 5 * time.Minute

// Config はRedis接続とキャッシュの設定です。
type Config struct {
	Host     string
	Port     string
	Password string
	CacheTTL time.Duration
}

// LoadConfigFromEnv は環境変数からRedis設定を読み込みます。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     os.Getenv("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
		CacheTTL: defaultCacheTTL,
	}
	if cfg.Port == "" {
		cfg.Port = "6379"
	}
	if d, err := time.ParseDuration(os.Getenv("CACHE_TTL")); err == nil && d > 0 {
		cfg.CacheTTL = d
	}
	return cfg
}

// Addr は host:port 形式のアドレスを返します。
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// NewRedisClient はRedisクライアントを生成し、疎通確認を行います。
// Hostが空の場合は ErrNotConfigured を返します。
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, ErrNotConfigured
	}
	addr := cfg.Addr()

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
