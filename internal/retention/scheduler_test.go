package retention

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverhold/codehub-backend/internal/chat/repository"
	"github.com/silverhold/codehub-backend/internal/chat/service"
)

func TestRunTrim(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	chat := service.NewChatService(repository.NewMessageRepository(client), time.Hour, "SilverHold Official")
	chat.Load(ctx)

	for _, text := range []string{"one", "two", "three"} {
		chat.Post(ctx, "u", text)
	}

	s := NewScheduler(chat, 2)
	s.runTrim()

	messages := chat.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "two", messages[0].Text)
	assert.Equal(t, "three", messages[1].Text)

	// Idempotent once under the cap
	s.runTrim()
	assert.Len(t, chat.Messages(), 2)
}
