// Package models defines client-side data models for the AutoPort CLI:
// inventory records, the cached session, user profile and account settings.
package models

import "time"

// Known inventory statuses. The backend owns the vocabulary; anything else
// is carried through untouched but excluded from per-status breakdowns.
const (
	StatusImported       = "Imported"
	StatusInTransit      = "In Transit"
	StatusReadyForExport = "Ready for Export"
)

// KnownStatuses lists the recognized statuses in display order.
var KnownStatuses = []string{StatusImported, StatusInTransit, StatusReadyForExport}

// Car is one inventory line item: a car model and its stock.
//
// TotalValue is derived from Quantity and Price and is never edited on its
// own; RecomputeTotalValue re-establishes the invariant after local writes.
// The backend remains the durable owner of every record; the client holds a
// transient copy refreshed after each mutation.
type Car struct {
	ID         int64   `json:"id"`
	Model      string  `json:"model"`
	Year       int     `json:"year"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	Country    string  `json:"country"`
	Image      string  `json:"image,omitempty"`
	TotalValue float64 `json:"totalValue"`
}

// RecomputeTotalValue resets TotalValue to Quantity × Price.
func (c *Car) RecomputeTotalValue() {
	c.TotalValue = float64(c.Quantity) * c.Price
}

// IsKnownStatus reports whether s is one of the recognized statuses.
func IsKnownStatus(s string) bool {
	return s == StatusImported || s == StatusInTransit || s == StatusReadyForExport
}

// NewLocalID derives an identifier for records created in fallback mode,
// where the backend cannot assign one: milliseconds since the Unix epoch.
func NewLocalID(now time.Time) int64 {
	return now.UnixMilli()
}
