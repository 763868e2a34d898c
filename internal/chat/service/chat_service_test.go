package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverhold/codehub-backend/internal/chat/repository"
)

const testReplySender = "SilverHold Official"

func setupChat(t *testing.T, delay time.Duration) (*ChatService, *repository.MessageRepository) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	repo := repository.NewMessageRepository(client)
	svc := NewChatService(repo, delay, testReplySender)
	svc.Load(context.Background())
	return svc, repo
}

func TestLoad_SeedsWelcomeMessage(t *testing.T) {
	svc, _ := setupChat(t, time.Hour)

	messages := svc.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "System", messages[0].Sender)
	assert.Equal(t, "Welcome to Source Code Hub Chat!", messages[0].Text)
	assert.True(t, messages[0].IsAdmin)
}

func TestPost_AppendsImmediatelyThenRepliesOnce(t *testing.T) {
	svc, _ := setupChat(t, 20*time.Millisecond)
	ctx := context.Background()

	msg := svc.Post(ctx, "", "is this project free?")

	// Exactly one new message right away
	messages := svc.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, msg, messages[1])
	assert.False(t, msg.IsAdmin)
	assert.Regexp(t, `^USER\d{1,3}$`, msg.Sender)

	// Exactly one simulated reply after the deferred delay
	require.Eventually(t, func() bool {
		return len(svc.Messages()) == 3
	}, time.Second, 5*time.Millisecond)

	reply := svc.Messages()[2]
	assert.True(t, reply.IsAdmin)
	assert.Equal(t, testReplySender, reply.Sender)
	assert.Contains(t, replyPool, reply.Text)

	// And only one: no further messages trickle in
	time.Sleep(60 * time.Millisecond)
	assert.Len(t, svc.Messages(), 3)
}

func TestPost_KeepsProvidedSender(t *testing.T) {
	svc, _ := setupChat(t, time.Hour)

	msg := svc.Post(context.Background(), "guest42", "hello")
	assert.Equal(t, "guest42", msg.Sender)
}

func TestPost_PersistsEachAppend(t *testing.T) {
	svc, repo := setupChat(t, 20*time.Millisecond)
	ctx := context.Background()

	svc.Post(ctx, "guest", "ping")

	persisted, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted, 2)

	// The reply lands in storage too, even though the request is long gone
	require.Eventually(t, func() bool {
		persisted, err := repo.Load(ctx)
		return err == nil && len(persisted) == 3
	}, time.Second, 5*time.Millisecond)
}

func TestMessages_PreserveInsertionOrder(t *testing.T) {
	svc, repo := setupChat(t, time.Hour)
	ctx := context.Background()

	svc.Post(ctx, "a", "first")
	svc.Post(ctx, "b", "second")
	svc.Post(ctx, "c", "third")

	reloaded := NewChatService(repo, time.Hour, testReplySender)
	reloaded.Load(ctx)

	var texts []string
	for _, m := range reloaded.Messages() {
		texts = append(texts, m.Text)
	}
	assert.Equal(t, []string{"Welcome to Source Code Hub Chat!", "first", "second", "third"}, texts)
}

func TestLoad_FallsBackOnCorruptHistory(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	mr.Set("messages", "][")

	svc := NewChatService(repository.NewMessageRepository(client), time.Hour, testReplySender)
	svc.Load(context.Background())

	messages := svc.Messages()
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsAdmin)
}

func TestTail(t *testing.T) {
	svc, _ := setupChat(t, time.Hour)
	ctx := context.Background()

	watermark := svc.Appended()
	require.Equal(t, uint64(1), watermark)

	tail, next := svc.Tail(watermark)
	assert.Empty(t, tail)
	assert.Equal(t, watermark, next)

	svc.Post(ctx, "a", "one")
	svc.Post(ctx, "b", "two")

	tail, next = svc.Tail(watermark)
	require.Len(t, tail, 2)
	assert.Equal(t, "one", tail[0].Text)
	assert.Equal(t, "two", tail[1].Text)
	assert.Equal(t, uint64(3), next)
}

func TestSnapshot_PairsLogWithWatermark(t *testing.T) {
	svc, _ := setupChat(t, time.Hour)
	ctx := context.Background()

	svc.Post(ctx, "a", "one")

	messages, watermark := svc.Snapshot()
	require.Len(t, messages, 2)
	assert.Equal(t, uint64(2), watermark)

	// Anything appended after the snapshot surfaces through Tail; nothing
	// falls between snapshot and watermark.
	svc.Post(ctx, "b", "two")

	tail, next := svc.Tail(watermark)
	require.Len(t, tail, 1)
	assert.Equal(t, "two", tail[0].Text)
	assert.Equal(t, uint64(3), next)
}

func TestTrim(t *testing.T) {
	svc, repo := setupChat(t, time.Hour)
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three", "four"} {
		svc.Post(ctx, "u", text)
	}

	t.Run("noop under the cap", func(t *testing.T) {
		assert.Zero(t, svc.Trim(ctx, 10))
		assert.Len(t, svc.Messages(), 5)
	})

	t.Run("drops oldest beyond the cap", func(t *testing.T) {
		assert.Equal(t, 3, svc.Trim(ctx, 2))

		messages := svc.Messages()
		require.Len(t, messages, 2)
		assert.Equal(t, "three", messages[0].Text)
		assert.Equal(t, "four", messages[1].Text)

		persisted, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, messages, persisted)
	})
}
