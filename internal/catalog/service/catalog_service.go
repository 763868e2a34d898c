package service

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/silverhold/codehub-backend/internal/catalog/domain"
	"github.com/silverhold/codehub-backend/internal/catalog/repository"
)

// CatalogService holds the in-memory project collection and mirrors every
// successful mutation back to storage. Writes are best-effort: a failed save
// is logged and the in-memory state stays authoritative until the next
// successful write.
type CatalogService struct {
	mu       sync.RWMutex
	projects []domain.Project
	repo     *repository.ProjectRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo *repository.ProjectRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Load initializes the collection from storage. Missing or corrupt data
// degrades to the seed catalog with a log line; it never fails.
func (s *CatalogService) Load(ctx context.Context) {
	projects, err := s.repo.Load(ctx)
	if err != nil {
		if err != domain.ErrNoData {
			log.Printf("[catalog] failed to load projects, using seed data: %v", err)
		}
		projects = SeedProjects()
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
}

// List returns the collection filtered by an optional case-insensitive
// substring match on name or language, sorted newest first.
func (s *CatalogService) List(query string) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Language), q) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})

	return out
}

// Get returns the project with the given id.
func (s *CatalogService) Get(id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

// Like increments the like counter of the given project by one. An unknown
// id is a silent no-op; the caller contract is to pass a known id.
func (s *CatalogService) Like(ctx context.Context, id string) {
	s.increment(ctx, id, func(p *domain.Project) { p.Likes++ })
}

// RecordDownload increments the download counter of the given project by one.
// Same contract as Like.
func (s *CatalogService) RecordDownload(ctx context.Context, id string) {
	s.increment(ctx, id, func(p *domain.Project) { p.Downloads++ })
}

func (s *CatalogService) increment(ctx context.Context, id string, bump func(*domain.Project)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	next := make([]domain.Project, len(s.projects))
	for i, p := range s.projects {
		if p.ID == id {
			bump(&p)
			found = true
		}
		next[i] = p
	}
	if !found {
		return
	}

	s.projects = next
	s.persist(ctx)
}

// Add fills the server-owned fields, prepends the project (front of list is
// most recently added, independent of createdAt), and persists.
func (s *CatalogService) Add(ctx context.Context, p domain.Project, authorID string) domain.Project {
	p.ID = uuid.NewString()
	p.AuthorID = authorID
	p.Likes = 0
	p.Downloads = 0
	p.CreatedAt = time.Now().UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Project, 0, len(s.projects)+1)
	next = append(next, p)
	next = append(next, s.projects...)
	s.projects = next
	s.persist(ctx)

	return p
}

// Delete removes the project with the given id if present; an absent id
// leaves the collection untouched and is still persisted as a no-op.
func (s *CatalogService) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.ID == id {
			continue
		}
		next = append(next, p)
	}
	s.projects = next
	s.persist(ctx)
}

// ListByAuthor returns the projects owned by the given admin, in collection
// order (dashboard view).
func (s *CatalogService) ListByAuthor(authorID string) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out
}

// persist writes the collection back to storage. Callers hold s.mu.
func (s *CatalogService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.projects); err != nil {
		log.Printf("[catalog] failed to persist projects: %v", err)
	}
}
