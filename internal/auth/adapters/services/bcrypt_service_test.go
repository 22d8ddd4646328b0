package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapters "notekeeper/internal/auth/adapters/services"
	"notekeeper/internal/auth/domain/services"
)

func TestBcryptHash(t *testing.T) {
	svc := adapters.NewBcrypt(4)
	ctx := context.Background()

	t.Run("Success - password hashed and verified", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "password123")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "password123", hash)

		valid, err := svc.Verify(ctx, "password123", hash)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Success - same password hashes differently", func(t *testing.T) {
		first, err := svc.Hash(ctx, "password123")
		require.NoError(t, err)
		second, err := svc.Hash(ctx, "password123")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("Error - empty password", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidPassword)
		assert.Empty(t, hash)
	})

	t.Run("Error - password shorter than minimum", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "12345")
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidPassword)
		assert.Empty(t, hash)
	})
}

func TestBcryptVerify(t *testing.T) {
	svc := adapters.NewBcrypt(4)
	ctx := context.Background()

	hash, err := svc.Hash(ctx, "password123")
	require.NoError(t, err)

	t.Run("Success - wrong password is not an error", func(t *testing.T) {
		valid, err := svc.Verify(ctx, "wrong-password", hash)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Error - empty password", func(t *testing.T) {
		valid, err := svc.Verify(ctx, "", hash)
		require.Error(t, err)
		assert.False(t, valid)
	})

	t.Run("Error - malformed hash", func(t *testing.T) {
		valid, err := svc.Verify(ctx, "password123", "not-a-bcrypt-hash")
		require.Error(t, err)
		assert.False(t, valid)
	})
}
