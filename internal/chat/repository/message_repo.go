package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/silverhold/codehub-backend/internal/chat/domain"
)

// messagesKey is the storage entry holding the chat log as one JSON array.
const messagesKey = "messages"

// MessageRepository persists the chat message log as one JSON blob.
type MessageRepository struct {
	client *redis.Client
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(client *redis.Client) *MessageRepository {
	return &MessageRepository{client: client}
}

// Load reads and deserializes the full chat log. A missing key returns
// domain.ErrNoData so the caller seeds the welcome message.
func (r *MessageRepository) Load(ctx context.Context) ([]domain.ChatMessage, error) {
	data, err := r.client.Get(ctx, messagesKey).Result()
	if err == redis.Nil {
		return nil, domain.ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}

	var messages []domain.ChatMessage
	if err := json.Unmarshal([]byte(data), &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}

	return messages, nil
}

// Save serializes and writes the full chat log.
func (r *MessageRepository) Save(ctx context.Context, messages []domain.ChatMessage) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	if err := r.client.Set(ctx, messagesKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write messages: %w", err)
	}

	return nil
}
