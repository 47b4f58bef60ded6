// Package api wraps the AutoPort backend REST API with a uniform contract:
// every call attaches the cached credential, decodes the backend's
// success/error envelope and classifies failures. Each call is attempted
// exactly once; retry policy, if any, belongs to the caller.
package api

import (
	"context"
	"io"

	"github.com/waqarulwahab/autoport/internal/client/models"
	"github.com/waqarulwahab/autoport/internal/client/query"
)

// CredentialStore supplies the session token for outbound requests and is
// invalidated when the backend rejects the credential. Satisfied by
// session.Store.
type CredentialStore interface {
	Token(ctx context.Context) string
	Clear(ctx context.Context) error
}

// RegisterRequest is the account-creation payload.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Client is the full backend surface the CLI consumes.
type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, req RegisterRequest) (*models.Session, error)
	Logout(ctx context.Context) error

	// Inventory.
	ListCars(ctx context.Context) ([]models.Car, error)
	GetCar(ctx context.Context, id int64) (*models.Car, error)
	CreateCar(ctx context.Context, car *models.Car) (*models.Car, error)
	UpdateCar(ctx context.Context, car *models.Car) (*models.Car, error)
	DeleteCar(ctx context.Context, id int64) error
	RecentActivities(ctx context.Context, limit int) ([]models.Activity, error)

	// Exports.
	ListExports(ctx context.Context) ([]models.Export, error)
	CreateExport(ctx context.Context, exp *models.Export) (*models.Export, error)
	UpdateExportStatus(ctx context.Context, id int64, status string) error
	DeleteExport(ctx context.Context, id int64) error

	// Dashboard.
	DashboardStats(ctx context.Context) (*query.Stats, error)
	Search(ctx context.Context, q string) ([]models.Car, error)

	// Profile and settings.
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) (*models.User, error)
	ChangePassword(ctx context.Context, current, newPassword, confirm string) error
	EmailPreferences(ctx context.Context) (*models.EmailPreferences, error)
	UpdateEmailPreferences(ctx context.Context, p *models.EmailPreferences) error
	SystemPreferences(ctx context.Context) (*models.SystemPreferences, error)
	UpdateSystemPreferences(ctx context.Context, p *models.SystemPreferences) error

	// UploadImage streams an image and returns its URL.
	UploadImage(ctx context.Context, filename string, r io.Reader) (string, error)
}
