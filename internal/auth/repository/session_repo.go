package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/silverhold/codehub-backend/internal/auth/domain"
)

// sessionKey is the storage entry holding the current admin session. The key
// is deleted entirely when logged out rather than set to an empty value.
const sessionKey = "auth"

// SessionRepository persists the at-most-one admin session.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// Get reads the persisted session. An absent key returns domain.ErrNoSession.
func (r *SessionRepository) Get(ctx context.Context) (*domain.Admin, error) {
	data, err := r.client.Get(ctx, sessionKey).Result()
	if err == redis.Nil {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var admin domain.Admin
	if err := json.Unmarshal([]byte(data), &admin); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &admin, nil
}

// Set writes the session record, password included, so a restart restores the
// logged-in admin exactly as last saved.
func (r *SessionRepository) Set(ctx context.Context, admin *domain.Admin) error {
	data, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}

// Clear removes the persisted session key.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
