// Package query implements the inventory query engine: pure, synchronous
// transformations of a car collection into filtered views, dashboard
// aggregates and CSV exports. No I/O, no side effects.
package query

import (
	"strings"

	"github.com/waqarulwahab/autoport/internal/client/models"
)

// Criteria is the ephemeral search/filter state of the inventory view.
// A zero Criteria matches everything.
type Criteria struct {
	// Search is matched case-insensitively as a substring of the model
	// name or the country. Empty matches all records.
	Search string

	// Status, when non-empty, must equal the record's status exactly.
	Status string
}

// Filter returns the records matching c, preserving their relative order.
// Missing text fields are treated as empty strings; no input can make
// Filter fail.
func Filter(cars []models.Car, c Criteria) []models.Car {
	term := strings.ToLower(c.Search)

	result := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if term != "" &&
			!strings.Contains(strings.ToLower(car.Model), term) &&
			!strings.Contains(strings.ToLower(car.Country), term) {
			continue
		}
		if c.Status != "" && car.Status != c.Status {
			continue
		}
		result = append(result, car)
	}
	return result
}
