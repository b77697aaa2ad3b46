package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner",
			PlainPassword: "correct horse battery staple",
		})
		require.NoError(t, err)

		assert.NotEqual(t, "correct horse battery staple", user.PasswordHash)
		assert.True(t, user.VerifyPassword("correct horse battery staple"))
		assert.False(t, user.VerifyPassword("wrong password"))
	})

	t.Run("username too short", func(t *testing.T) {
		_, err := NewUser(UserConfig{ID: uuid.New(), Username: "ab", PlainPassword: "correct horse battery staple"})
		assert.Error(t, err)
	})

	t.Run("username with illegal characters", func(t *testing.T) {
		_, err := NewUser(UserConfig{ID: uuid.New(), Username: "bad name!", PlainPassword: "correct horse battery staple"})
		assert.Error(t, err)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := NewUser(UserConfig{ID: uuid.New(), Username: "maze_runner", PlainPassword: "12345"})
		assert.Error(t, err)
	})
}
