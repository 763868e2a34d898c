package service

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/silverhold/codehub-backend/internal/auth/domain"
	"github.com/silverhold/codehub-backend/internal/auth/repository"
)

// AuthService owns the single admin session and the access gate over the
// built-in admin directory. The session is write-through persisted: every
// change is mirrored to storage before the call returns.
type AuthService struct {
	mu       sync.RWMutex
	session  *domain.Admin
	sessions *repository.SessionRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(sessions *repository.SessionRepository) *AuthService {
	return &AuthService{sessions: sessions}
}

// Load restores the persisted session at startup. Missing or corrupt data
// degrades to logged-out; it never fails.
func (s *AuthService) Load(ctx context.Context) {
	admin, err := s.sessions.Get(ctx)
	if err != nil {
		if err != domain.ErrNoSession {
			log.Printf("[auth] failed to restore session, starting logged out: %v", err)
		}
		return
	}

	s.mu.Lock()
	s.session = admin
	s.mu.Unlock()
}

// Authenticate validates a username/password pair against the directory.
// Usernames compare case-insensitively, passwords by exact equality. It is
// pure: it does not touch the session. Returns nil when no admin matches.
//
// Passwords are compared in plaintext on purpose: the reference system ships
// its credentials in client-visible source and this port keeps that contract.
func Authenticate(username, password string) *domain.Admin {
	for _, a := range directory {
		if strings.EqualFold(a.Username, username) && a.Password == password {
			cp := a.Clone()
			return &cp
		}
	}
	return nil
}

// Login runs the gate and, on success, installs and persists the session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Admin, error) {
	admin := Authenticate(username, password)
	if admin == nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.session = admin
	s.mu.Unlock()

	if err := s.sessions.Set(ctx, admin); err != nil {
		log.Printf("[auth] failed to persist session: %v", err)
	}

	cp := admin.Clone()
	return &cp, nil
}

// Logout clears the session and removes the persisted key.
func (s *AuthService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		log.Printf("[auth] failed to clear persisted session: %v", err)
	}
}

// Current returns a copy of the session admin, or nil when logged out.
func (s *AuthService) Current() *domain.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil
	}
	cp := s.session.Clone()
	return &cp
}

// UpdateProfileRequest carries the editable profile fields. A password change
// is requested by setting NewPassword; OldPassword must then match the
// session admin's current password or the entire update is rejected.
type UpdateProfileRequest struct {
	Name        string
	PhotoURL    string
	Quote       string
	Hashtags    []string
	OldPassword string
	NewPassword string
}

// UpdateProfile applies the request to the session admin and persists the
// session record. The canonical directory is not rewritten, so the edit lasts
// only until the next login; see DESIGN.md for why that behavior is kept.
func (s *AuthService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*domain.Admin, error) {
	s.mu.Lock()

	if s.session == nil {
		s.mu.Unlock()
		return nil, domain.ErrNoSession
	}

	if req.NewPassword != "" && req.OldPassword != s.session.Password {
		s.mu.Unlock()
		return nil, domain.ErrPasswordMismatch
	}

	updated := s.session.Clone()
	updated.Name = req.Name
	updated.PhotoURL = req.PhotoURL
	updated.Quote = req.Quote
	// Always a non-nil slice: the persisted layout writes a JSON array for
	// hashtags, never null.
	updated.Hashtags = append([]string{}, req.Hashtags...)
	if req.NewPassword != "" {
		updated.Password = req.NewPassword
	}

	s.session = &updated
	s.mu.Unlock()

	if err := s.sessions.Set(ctx, &updated); err != nil {
		log.Printf("[auth] failed to persist updated session: %v", err)
	}

	cp := updated.Clone()
	return &cp, nil
}

// Admins returns the canonical directory with passwords stripped, for the
// public profile listing.
func (s *AuthService) Admins() []domain.Admin {
	out := make([]domain.Admin, 0, len(directory))
	for _, a := range directory {
		out = append(out, a.Clone().Sanitized())
	}
	return out
}
