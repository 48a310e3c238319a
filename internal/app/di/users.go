// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"users_backend/internal/feature/users/adapters"
	"users_backend/internal/feature/users/usecase"
	"users_backend/internal/platform/cache"
)

// NewUserRepository creates a UserRepository implementation.
// If Redis is available, the GORM repository is wrapped with a read cache.
// Otherwise, the GORM repository is returned as is.
func NewUserRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.UserRepository {
	repo := adapters.NewUserGorm(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, ttl, repo, "users")
	}
	return repo
}
