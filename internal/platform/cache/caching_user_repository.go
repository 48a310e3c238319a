// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"users_backend/internal/feature/users/domain/entity"
	"users_backend/internal/feature/users/usecase"
)

// CachingUserRepository decorates a UserRepository with a Redis read cache.
// FindByID and FindAll are served from the cache; FindByEmail always reaches
// the inner repository because it backs the uniqueness check. Every
// successful write invalidates the affected keys.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
// A nil rdb disables caching entirely.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindAll returns all users, checking the cache first.
func (c *CachingUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.allKey()
	var cached []entity.User
	if c.load(ctx, key, &cached) {
		return cached, nil
	}

	users, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	// An empty result is not cached so the first Create is visible immediately.
	if len(users) > 0 {
		c.store(ctx, key, users)
	}
	return users, nil
}

// FindByID returns a user by id, checking the cache first.
// Absent users are never cached.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(id)
	var cached entity.User
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	u, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, u)
	return u, nil
}

// FindByEmail bypasses the cache.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.inner.FindByEmail(ctx, email)
}

// Create persists a user and drops the cached list.
func (c *CachingUserRepository) Create(ctx context.Context, user *entity.User) error {
	if err := c.inner.Create(ctx, user); err != nil {
		return err
	}
	c.invalidate(ctx, c.allKey())
	return nil
}

func (c *CachingUserRepository) Update(ctx context.Context, id uint, fields entity.UserUpdate) (*entity.User, error) {
	return c.afterWrite(ctx, id)(c.inner.Update(ctx, id, fields))
}

func (c *CachingUserRepository) UpdateName(ctx context.Context, id uint, name string) (*entity.User, error) {
	return c.afterWrite(ctx, id)(c.inner.UpdateName(ctx, id, name))
}

func (c *CachingUserRepository) UpdateEmail(ctx context.Context, id uint, email string) (*entity.User, error) {
	return c.afterWrite(ctx, id)(c.inner.UpdateEmail(ctx, id, email))
}

func (c *CachingUserRepository) UpdatePassword(ctx context.Context, id uint, password string) (*entity.User, error) {
	return c.afterWrite(ctx, id)(c.inner.UpdatePassword(ctx, id, password))
}

func (c *CachingUserRepository) Delete(ctx context.Context, id uint) (*entity.User, error) {
	return c.afterWrite(ctx, id)(c.inner.Delete(ctx, id))
}

// afterWrite returns a function that invalidates the user's keys when the
// write it wraps succeeded, and passes the result through unchanged.
func (c *CachingUserRepository) afterWrite(ctx context.Context, id uint) func(*entity.User, error) (*entity.User, error) {
	return func(u *entity.User, err error) (*entity.User, error) {
		if err != nil {
			return nil, err
		}
		c.invalidate(ctx, c.idKey(id), c.allKey())
		return u, nil
	}
}

// load reads key into dst. A corrupted entry is deleted and reported as a miss.
func (c *CachingUserRepository) load(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// store writes v under key (best effort).
func (c *CachingUserRepository) store(ctx context.Context, key string, v any) {
	if b, err := json.Marshal(v); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
}

// invalidate deletes keys (best effort: don't fail the write if cache deletion fails).
func (c *CachingUserRepository) invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

func (c *CachingUserRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

func (c *CachingUserRepository) allKey() string {
	return c.namespace + ":all"
}
