package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/waqarulwahab/autoport/internal/common"
)

// knownMessages maps backend error substrings to stable, user-facing
// sentences. The backend's error vocabulary is not contractually specified,
// so this table mirrors the messages observed in production.
var knownMessages = []struct {
	substring string
	message   string
}{
	{missingCredentialsMsg, "Please login again"},
	{"User with this email already exists", "Registration failed: An account with this email already exists. Please use a different email or try logging in."},
	{"This password is too common", "Registration failed: Please choose a stronger password."},
	{"This password is too short", "Registration failed: Password must be at least 8 characters long."},
	{"This password is entirely numeric", "Registration failed: Password cannot be entirely numeric."},
	{"Current password is incorrect", "Password change failed: Current password is incorrect."},
	{"New passwords do not match", "Password change failed: New passwords do not match."},
	{"You can only update your own profile", "Profile update failed: You can only update your own profile."},
	{"Internal Server Error", "Server error. Please try again later."},
}

// fieldTitles maps backend field names to their display titles. Unlisted
// fields fall back to a title-cased version of the name.
var fieldTitles = map[string]string{
	"email":      "Email",
	"password":   "Password",
	"first_name": "First Name",
	"last_name":  "Last Name",
	"phone":      "Phone",
	"company":    "Company",
}

// UserMessage translates any failure from the adapter into a display-safe
// string. It never panics, including on nil input.
//
// Resolution order: per-field validation details (one line per field),
// the known-substring table, connectivity failures, the raw backend
// message, and finally a generic sentence.
func UserMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred. Please try again."
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) && len(reqErr.Details) > 0 {
		return fieldDetailMessage(reqErr.Details)
	}

	msg := err.Error()
	for _, known := range knownMessages {
		if strings.Contains(msg, known.substring) {
			return known.message
		}
	}

	if errors.Is(err, common.ErrUnavailable) {
		return "Network error. Please check your internet connection and try again."
	}

	if msg != "" {
		return msg
	}
	return "An unexpected error occurred. Please try again."
}

// fieldDetailMessage concatenates per-field validation messages into a
// multi-line summary, fields in stable order.
func fieldDetailMessage(details map[string][]string) string {
	fields := make([]string, 0, len(details))
	for f := range details {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%s: %s", fieldTitle(f), strings.Join(details[f], ", ")))
	}
	return strings.Join(lines, "\n")
}

func fieldTitle(field string) string {
	if title, ok := fieldTitles[field]; ok {
		return title
	}
	words := strings.Split(field, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
