package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/waqarulwahab/autoport/internal/client/api"
	"github.com/waqarulwahab/autoport/internal/client/models"
	"github.com/waqarulwahab/autoport/internal/common"
)

// AccountService covers the account-settings surface: profile, password
// change, e-mail and system preferences, and image upload.
type AccountService interface {
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) (*models.User, error)
	ChangePassword(ctx context.Context, current, newPassword, confirm string) error
	EmailPreferences(ctx context.Context) (*models.EmailPreferences, error)
	UpdateEmailPreferences(ctx context.Context, p *models.EmailPreferences) error
	SystemPreferences(ctx context.Context) (*models.SystemPreferences, error)
	UpdateSystemPreferences(ctx context.Context, p *models.SystemPreferences) error
	UploadImage(ctx context.Context, path string) (string, error)
}

type accountService struct {
	client api.Client
}

func NewAccountService(client api.Client) AccountService {
	return &accountService{client: client}
}

func (a *accountService) Profile(ctx context.Context) (*models.User, error) {
	return a.client.Profile(ctx)
}

func (a *accountService) UpdateProfile(ctx context.Context, user *models.User) (*models.User, error) {
	return a.client.UpdateProfile(ctx, user)
}

// ChangePassword validates the form locally before the request goes out,
// so a mistyped confirmation never leaves the machine.
func (a *accountService) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	if errs := models.ValidatePasswordChange(current, newPassword, confirm); errs != nil {
		return fmt.Errorf("%w: %s", common.ErrValidation, errs.Error())
	}
	return a.client.ChangePassword(ctx, current, newPassword, confirm)
}

func (a *accountService) EmailPreferences(ctx context.Context) (*models.EmailPreferences, error) {
	return a.client.EmailPreferences(ctx)
}

func (a *accountService) UpdateEmailPreferences(ctx context.Context, p *models.EmailPreferences) error {
	return a.client.UpdateEmailPreferences(ctx, p)
}

func (a *accountService) SystemPreferences(ctx context.Context) (*models.SystemPreferences, error) {
	return a.client.SystemPreferences(ctx)
}

func (a *accountService) UpdateSystemPreferences(ctx context.Context, p *models.SystemPreferences) error {
	return a.client.UpdateSystemPreferences(ctx, p)
}

// UploadImage streams the file at path to the backend and returns the
// stored URL.
func (a *accountService) UploadImage(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return a.client.UploadImage(ctx, filepath.Base(path), f)
}
