package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash verifies against original password", func(t *testing.T) {
		hash, err := HashPassword("secret123")
		require.NoError(t, err)
		require.NotEqual(t, "secret123", hash)

		ok, err := CheckPassword("secret123", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		first, err := HashPassword("secret123")
		require.NoError(t, err)
		second, err := HashPassword("secret123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestCheckPassword(t *testing.T) {
	t.Run("wrong password is a mismatch, not an error", func(t *testing.T) {
		hash, err := HashPassword("secret123")
		require.NoError(t, err)

		ok, err := CheckPassword("wrong-password", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed hash is an error", func(t *testing.T) {
		ok, err := CheckPassword("secret123", "not-a-bcrypt-hash")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}
