package cli

import (
	"context"
	"os"

	"github.com/waqarulwahab/autoport/internal/client/api"
	"github.com/waqarulwahab/autoport/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and creates a new account.
// A successful registration also logs the user in: the backend returns a
// ready session and the service caches it.
//
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	company, err := getSimpleText(a.reader, "Enter company (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.auth.Register(ctx, api.RegisterRequest{
		Email:     email,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
		Company:   company,
	})
	if err != nil {
		return err
	}

	a.userName = sess.DisplayName()
	printlnFn("Welcome,", a.userName)
	return nil
}

// Login prompts for credentials and authenticates against the backend.
// On success the session is cached locally and the prompt shows the user.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.userName = sess.DisplayName()
	printlnFn("Welcome back,", a.userName)
	return nil
}

// Logout invalidates the server-side session and clears the local cache.
// The prompt drops the user name even when the backend was unreachable.
func (a *App) Logout(ctx context.Context) error {
	err := a.auth.Logout(ctx)
	a.userName = ""
	if err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}
