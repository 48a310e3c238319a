// Package config はHTTPサーバーの設定を環境変数から読み込みます。
package config

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultPort            = "5000"
	defaultShutdownTimeout = 10 * time.Second
)

// Server はHTTPサーバーの設定です。
type Server struct {
	Port            string
	CORSEnabled     bool
	ShutdownTimeout time.Duration
}

// LoadServerFromEnv は PORT, CORS_ENABLED, SHUTDOWN_TIMEOUT を読み込みます。
func LoadServerFromEnv() Server {
	cfg := Server{
		Port:            os.Getenv("PORT"),
		ShutdownTimeout: defaultShutdownTimeout,
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if v, err := strconv.ParseBool(os.Getenv("CORS_ENABLED")); err == nil {
		cfg.CORSEnabled = v
	}
	if d, err := time.ParseDuration(os.Getenv("SHUTDOWN_TIMEOUT")); err == nil && d > 0 {
		cfg.ShutdownTimeout = d
	}
	return cfg
}

// Addr は http.Server に渡すリッスンアドレスを返します。
func (s Server) Addr() string {
	return ":" + s.Port
}
