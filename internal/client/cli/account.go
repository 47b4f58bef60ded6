package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/waqarulwahab/autoport/internal/common"
)

// Profile prints the current user profile.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.account.Profile(ctx)
	if err != nil {
		return err
	}

	printlnFn("Email:  ", user.Email)
	printlnFn("Name:   ", user.FirstName, user.LastName)
	if user.Phone != "" {
		printlnFn("Phone:  ", user.Phone)
	}
	if user.Company != "" {
		printlnFn("Company:", user.Company)
	}
	if user.Role != "" {
		printlnFn("Role:   ", user.Role)
	}
	return nil
}

// EditProfile updates the profile fields. Empty input keeps the current
// value.
func (a *App) EditProfile(ctx context.Context) error {
	user, err := a.account.Profile(ctx)
	if err != nil {
		return err
	}

	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"First name", &user.FirstName},
		{"Last name", &user.LastName},
		{"Phone", &user.Phone},
		{"Company", &user.Company},
	} {
		v, err := getSimpleText(a.reader, prompt(f.label, *f.dst), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}

	updated, err := a.account.UpdateProfile(ctx, user)
	if err != nil {
		return err
	}

	a.userName = updated.FirstName
	if a.userName == "" {
		a.userName = updated.Email
	}
	printlnFn("Profile updated")
	return nil
}

// ChangePassword prompts for the current and new passwords and submits the
// change. The form is validated locally before the request goes out.
//
// All password buffers are wiped before returning.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	newPassword, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirm, err := getPassword(os.Stdout, "Confirm new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.account.ChangePassword(ctx, string(current), string(newPassword), string(confirm)); err != nil {
		return err
	}
	printlnFn("Password changed")
	return nil
}

// EmailPreferences shows the notification settings and optionally walks
// through editing them.
func (a *App) EmailPreferences(ctx context.Context) error {
	prefs, err := a.account.EmailPreferences(ctx)
	if err != nil {
		return err
	}

	printlnFn("Notifications:   ", onOff(prefs.ReceiveNotifications))
	printlnFn("Weekly reports:  ", onOff(prefs.ReceiveWeeklyReports))
	printlnFn("Monthly reports: ", onOff(prefs.ReceiveMonthlyReports))
	printlnFn("System alerts:   ", onOff(prefs.ReceiveSystemAlerts))
	printlnFn("Marketing:       ", onOff(prefs.ReceiveMarketingEmails))
	printlnFn("Frequency:       ", prefs.NotificationFrequency)

	edit, err := GetYesNo(a.reader, "Edit?", false, os.Stdout)
	if err != nil {
		return err
	}
	if !edit {
		return nil
	}

	for _, f := range []struct {
		label string
		dst   *bool
	}{
		{"Receive notifications", &prefs.ReceiveNotifications},
		{"Weekly reports", &prefs.ReceiveWeeklyReports},
		{"Monthly reports", &prefs.ReceiveMonthlyReports},
		{"System alerts", &prefs.ReceiveSystemAlerts},
		{"Marketing emails", &prefs.ReceiveMarketingEmails},
	} {
		v, err := GetYesNo(a.reader, f.label, *f.dst, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	frequency, err := getSimpleText(a.reader, prompt("Frequency", prefs.NotificationFrequency), os.Stdout)
	if err != nil {
		return err
	}
	if frequency != "" {
		prefs.NotificationFrequency = frequency
	}

	if err := a.account.UpdateEmailPreferences(ctx, prefs); err != nil {
		return err
	}
	printlnFn("Preferences saved")
	return nil
}

// SystemPreferences shows the UI/system settings and optionally walks
// through editing them.
func (a *App) SystemPreferences(ctx context.Context) error {
	prefs, err := a.account.SystemPreferences(ctx)
	if err != nil {
		return err
	}

	printlnFn("Dashboard tab:        ", prefs.DefaultDashboardTab)
	printlnFn("Theme:                ", prefs.Theme)
	printlnFn("Language:             ", prefs.Language)
	printlnFn("Timezone:             ", prefs.Timezone)
	printlnFn("Browser notifications:", onOff(prefs.BrowserNotifications))
	printlnFn("Sound notifications:  ", onOff(prefs.SoundNotifications))
	printlnFn(fmt.Sprintf("Auto refresh:          %ds", prefs.AutoRefreshInterval))

	edit, err := GetYesNo(a.reader, "Edit?", false, os.Stdout)
	if err != nil {
		return err
	}
	if !edit {
		return nil
	}

	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"Dashboard tab", &prefs.DefaultDashboardTab},
		{"Theme", &prefs.Theme},
		{"Language", &prefs.Language},
		{"Timezone", &prefs.Timezone},
	} {
		v, err := getSimpleText(a.reader, prompt(f.label, *f.dst), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}

	if prefs.BrowserNotifications, err = GetYesNo(a.reader, "Browser notifications", prefs.BrowserNotifications, os.Stdout); err != nil {
		return err
	}
	if prefs.SoundNotifications, err = GetYesNo(a.reader, "Sound notifications", prefs.SoundNotifications, os.Stdout); err != nil {
		return err
	}
	if prefs.AutoRefreshInterval, err = GetInt(a.reader, prompt("Auto refresh seconds", prefs.AutoRefreshInterval), prefs.AutoRefreshInterval, os.Stdout); err != nil {
		return err
	}

	if err := a.account.UpdateSystemPreferences(ctx, prefs); err != nil {
		return err
	}
	printlnFn("Preferences saved")
	return nil
}

// UploadImage sends a local image file to the backend and prints the
// stored URL.
func (a *App) UploadImage(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter image file path", os.Stdout)
	if err != nil {
		return err
	}

	url, err := a.account.UploadImage(ctx, path)
	if err != nil {
		return err
	}
	printlnFn("Uploaded:", url)
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
