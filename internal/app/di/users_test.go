package di

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"users_backend/internal/platform/cache"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestNewUserRepository_WithoutRedis(t *testing.T) {
	repo := NewUserRepository(openTestDB(t), nil, time.Minute)

	_, cached := repo.(*cache.CachingUserRepository)
	assert.False(t, cached, "expected the plain GORM repository")
}

func TestNewUserRepository_WithRedis(t *testing.T) {
	rdb, _ := redismock.NewClientMock()

	repo := NewUserRepository(openTestDB(t), rdb, time.Minute)

	assert.IsType(t, &cache.CachingUserRepository{}, repo)
}
