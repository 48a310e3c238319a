package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"users_backend/internal/app/config"
	"users_backend/internal/app/di"
	"users_backend/internal/app/router"
	usershandler "users_backend/internal/feature/users/transport/handler"
	"users_backend/internal/feature/users/usecase"
	"users_backend/internal/platform/db"
	platformhandler "users_backend/internal/platform/http/handler"
	"users_backend/internal/platform/password"
	infraredis "users_backend/internal/platform/redis"
	"users_backend/internal/shared/validate"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	serverCfg := config.LoadServerFromEnv()

	// DB
	gormDB, err := db.Open(db.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		slog.Error("failed to get sql.DB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Redis（任意）
	redisCfg := infraredis.LoadConfigFromEnv()
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(context.Background(), redisCfg); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := di.NewUserRepository(gormDB, rdb, redisCfg.CacheTTL)

	// Usecase
	userUC := usecase.NewUserUsecase(userRepo, password.NewBcryptHasher(password.CostFromEnv()), validate.Email)

	// Handler
	userH := usershandler.NewUserHandler(userUC)
	healthH := platformhandler.NewHealthHandler(sqlDB)

	// ルータ生成
	r := router.NewRouter(healthH, userH, router.Options{CORSEnabled: serverCfg.CORSEnabled})

	srv := &http.Server{
		Addr:              serverCfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
