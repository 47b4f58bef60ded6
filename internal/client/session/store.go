// Package session manages the client-side credential cache. It is the Go
// counterpart of the web client's local storage: the serialized session
// lives under the autoport_user key, plus a transient refresh flag the
// dashboard consumes on its next render.
//
// Auth state is a two-state machine: Anonymous and Authenticated. Login or
// registration success stores the session (Anonymous → Authenticated);
// logout or a rejected credential clears it (Authenticated → Anonymous).
// The state on startup is decided purely by the presence of a cached
// session.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/waqarulwahab/autoport/internal/client/models"
	"github.com/waqarulwahab/autoport/internal/client/repositories/metadata"
)

// State identifies the auth state machine's current state.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

const (
	sessionKey = "autoport_user"
	refreshKey = "refresh_dashboard"
)

// Store persists the session in the local metadata repository.
type Store struct {
	repo metadata.Repository
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Load returns the cached session, or nil when no user is logged in.
func (s *Store) Load(ctx context.Context) (*models.Session, error) {
	raw, err := s.repo.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode cached session: %w", err)
	}
	return &sess, nil
}

// Save stores the session, moving the state machine to Authenticated.
func (s *Store) Save(ctx context.Context, sess *models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.repo.Set(ctx, sessionKey, raw)
}

// Clear removes the cached session, moving the state machine to Anonymous.
// Safe to call when no session is cached.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, sessionKey)
}

// Reset wipes the whole metadata cache, the session plus any transient
// flags. Logout goes through here so that no stale UI state survives
// into the next login.
func (s *Store) Reset(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// State reports the current auth state based on cache contents.
func (s *Store) State(ctx context.Context) (State, error) {
	sess, err := s.Load(ctx)
	if err != nil {
		return StateAnonymous, err
	}
	if sess == nil || sess.Token == "" {
		return StateAnonymous, nil
	}
	return StateAuthenticated, nil
}

// Token returns the cached credential, or "" when anonymous. Errors reading
// the cache degrade to "" so that request building never fails on a cold
// cache.
func (s *Store) Token(ctx context.Context) string {
	sess, err := s.Load(ctx)
	if err != nil || sess == nil {
		return ""
	}
	return sess.Token
}

// RequestDashboardRefresh marks the dashboard as stale after a mutation
// performed from another view.
func (s *Store) RequestDashboardRefresh(ctx context.Context) error {
	return s.repo.Set(ctx, refreshKey, []byte("true"))
}

// ConsumeDashboardRefresh reports whether a refresh was requested and
// clears the flag.
func (s *Store) ConsumeDashboardRefresh(ctx context.Context) (bool, error) {
	raw, err := s.repo.Get(ctx, refreshKey)
	if err != nil {
		return false, err
	}
	if string(raw) != "true" {
		return false, nil
	}
	if err := s.repo.Delete(ctx, refreshKey); err != nil {
		return false, err
	}
	return true, nil
}
