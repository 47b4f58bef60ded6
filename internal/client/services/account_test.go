package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/waqarulwahab/autoport/internal/common"
)

func TestChangePassword_ValidatesBeforeNetwork(t *testing.T) {
	ctx := context.Background()
	called := false
	svc := NewAccountService(&fakeAPI{changePasswordFn: func(current, newPassword, confirm string) error {
		called = true
		return nil
	}})

	err := svc.ChangePassword(ctx, "old-pass", "short", "short")
	require.ErrorIs(t, err, common.ErrValidation)
	require.False(t, called)

	err = svc.ChangePassword(ctx, "old-pass", "new-password-1", "something-else")
	require.ErrorIs(t, err, common.ErrValidation)
	require.False(t, called)
}

func TestChangePassword_ForwardsValidForm(t *testing.T) {
	ctx := context.Background()
	var gotCurrent, gotNew, gotConfirm string
	svc := NewAccountService(&fakeAPI{changePasswordFn: func(current, newPassword, confirm string) error {
		gotCurrent, gotNew, gotConfirm = current, newPassword, confirm
		return nil
	}})

	require.NoError(t, svc.ChangePassword(ctx, "old-pass", "new-password-1", "new-password-1"))
	require.Equal(t, "old-pass", gotCurrent)
	require.Equal(t, "new-password-1", gotNew)
	require.Equal(t, "new-password-1", gotConfirm)
}

func TestUploadImage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "camry.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))

	svc := NewAccountService(&fakeAPI{})

	url, err := svc.UploadImage(ctx, path)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.org/camry.png", url)
}

func TestUploadImage_MissingFile(t *testing.T) {
	svc := NewAccountService(&fakeAPI{})

	_, err := svc.UploadImage(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}
