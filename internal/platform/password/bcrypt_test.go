package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_Cost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost, "zero falls back to default")
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost, "out of range falls back to default")
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed, "password is not hashed")

	assert.True(t, h.Verify("password123", hashed))
	assert.False(t, h.Verify("wrong-password", hashed))
	assert.False(t, h.Verify("password123", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_HashTooLong(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash(strings.Repeat("a", 73))

	assert.Error(t, err)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
	assert.Empty(t, hashed)
}

func TestCostFromEnv(t *testing.T) {
	t.Setenv("BCRYPT_COST", "12")
	assert.Equal(t, 12, CostFromEnv())

	t.Setenv("BCRYPT_COST", "abc")
	assert.Equal(t, 0, CostFromEnv())
}
