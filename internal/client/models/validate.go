package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// Error joins the field messages into a stable, display-safe string.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ""
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return strings.Join(parts, "; ")
}

// ValidateCar checks a car before it is sent anywhere. Rules match the
// add/edit form: model and country required, year within [1900, next year],
// quantity and price strictly positive, status required.
func ValidateCar(c *Car, now time.Time) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(c.Model) == "" {
		errs["model"] = "Car model is required"
	}
	if c.Year < 1900 || c.Year > now.Year()+1 {
		errs["year"] = "Please enter a valid year"
	}
	if c.Quantity <= 0 {
		errs["quantity"] = "Quantity must be greater than 0"
	}
	if c.Price <= 0 {
		errs["price"] = "Price must be greater than 0"
	}
	if c.Status == "" {
		errs["status"] = "Status is required"
	}
	if strings.TrimSpace(c.Country) == "" {
		errs["country"] = "Country is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidatePasswordChange checks a password-change form before submission.
func ValidatePasswordChange(current, newPassword, confirm string) FieldErrors {
	errs := FieldErrors{}

	if current == "" {
		errs["current_password"] = "Current password is required"
	}
	if newPassword == "" {
		errs["new_password"] = "New password is required"
	} else if len(newPassword) < 8 {
		errs["new_password"] = "New password must be at least 8 characters long"
	}
	if newPassword != confirm {
		errs["confirm_password"] = "New passwords do not match"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
