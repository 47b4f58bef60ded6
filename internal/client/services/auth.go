// Package services contains application services for the AutoPort CLI.
// This file defines the authentication service: login, registration,
// logout, and housekeeping of the cached session.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/waqarulwahab/autoport/internal/client/api"
	"github.com/waqarulwahab/autoport/internal/client/models"
	"github.com/waqarulwahab/autoport/internal/client/session"
	"github.com/waqarulwahab/autoport/internal/common"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login/Register: authenticate against the backend and cache the session.
//   - Logout: invalidate the server-side session and reset the local
//     metadata cache. The cache is reset even when the server call fails.
//   - Current: return the cached session, nil when anonymous.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, req api.RegisterRequest) (*models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
	State(ctx context.Context) (session.State, error)
}

type authService struct {
	client api.Client
	store  *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, store *session.Store) AuthService {
	return &authService{client: client, store: store}
}

// Login exchanges credentials for a session token and caches the session,
// moving the auth state to Authenticated.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	sess, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return sess, nil
}

// Register creates a new account. The backend returns a ready session, so a
// successful registration also logs the user in.
func (a *authService) Register(ctx context.Context, req api.RegisterRequest) (*models.Session, error) {
	sess, err := a.client.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return sess, nil
}

// Logout invalidates the server-side session and resets the local cache,
// dropping the session and any transient flags with it. The reset happens
// regardless of whether the server call succeeded; an unreachable or
// already-expired backend must not keep the user logged in locally.
func (a *authService) Logout(ctx context.Context) error {
	err := a.client.Logout(ctx)
	if err != nil && !errors.Is(err, common.ErrUnavailable) && !errors.Is(err, common.ErrUnauthorized) {
		// The rejection already cleared the cache when it was a credential
		// problem; for anything else the caller still wants to know.
		_ = a.store.Reset(ctx)
		return err
	}
	return a.store.Reset(ctx)
}

func (a *authService) Current(ctx context.Context) (*models.Session, error) {
	return a.store.Load(ctx)
}

func (a *authService) State(ctx context.Context) (session.State, error) {
	return a.store.State(ctx)
}
