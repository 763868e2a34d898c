package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Empty values read as unset, so this pins the test against whatever the
	// surrounding environment carries.
	for _, key := range []string{"PORT", "REDIS_ADDR", "APP_ENV", "CHAT_REPLY_DELAY_MS", "CHAT_MAX_MESSAGES"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 2*time.Second, cfg.Chat.ReplyDelay)
	assert.Equal(t, 500, cfg.Retention.MaxMessages)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CHAT_REPLY_DELAY_MS", "150")
	t.Setenv("CHAT_MAX_MESSAGES", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 150*time.Millisecond, cfg.Chat.ReplyDelay)
	assert.Equal(t, 50, cfg.Retention.MaxMessages)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestValidate(t *testing.T) {
	t.Run("rejects nonpositive retention cap", func(t *testing.T) {
		t.Setenv("CHAT_MAX_MESSAGES", "0")

		_, err := Load()
		assert.Error(t, err)
	})
}
