package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/silverhold/codehub-backend/internal/catalog/domain"
)

// projectsKey is the storage entry holding the whole project collection as a
// single JSON array, mirroring the web client's persisted layout.
const projectsKey = "projects"

// ProjectRepository persists the project collection as one JSON blob in a
// string-keyed store.
type ProjectRepository struct {
	client *redis.Client
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(client *redis.Client) *ProjectRepository {
	return &ProjectRepository{client: client}
}

// Load reads and deserializes the full collection. A missing key returns
// domain.ErrNoData so the caller can fall back to its seed data.
func (r *ProjectRepository) Load(ctx context.Context) ([]domain.Project, error) {
	data, err := r.client.Get(ctx, projectsKey).Result()
	if err == redis.Nil {
		return nil, domain.ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal([]byte(data), &projects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal projects: %w", err)
	}

	return projects, nil
}

// Save serializes and writes the full collection, replacing the previous
// value. The write spans a single key, so it is atomic per collection but
// carries no cross-collection transaction.
func (r *ProjectRepository) Save(ctx context.Context, projects []domain.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}

	if err := r.client.Set(ctx, projectsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write projects: %w", err)
	}

	return nil
}
