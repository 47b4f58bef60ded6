package query

import (
	"math"

	"github.com/waqarulwahab/autoport/internal/client/models"
)

// Stats is the dashboard aggregate: a pure function of the current car
// collection, never stored independently.
//
// TotalCars counts records; TotalUnits sums quantities. The three status
// counts cover only the recognized statuses, so they sum to at most
// TotalCars. JSON tags follow the backend's /dashboard/stats/ payload.
type Stats struct {
	TotalCars      int     `json:"totalCars"`
	TotalUnits     int     `json:"totalUnits"`
	Imported       int     `json:"imported"`
	InTransit      int     `json:"inTransit"`
	ReadyForExport int     `json:"readyForExport"`
	TotalValue     float64 `json:"totalValue"`
	AveragePrice   float64 `json:"averagePrice"`
	UniqueModels   int     `json:"uniqueModels"`
	Countries      int     `json:"countries"`
}

// Aggregate computes dashboard statistics over cars.
//
// It is referentially transparent: two calls on the same input yield
// identical results. Missing numeric fields count as zero and an empty
// input yields an all-zero Stats, so no division by zero and no NaN can
// reach the result.
func Aggregate(cars []models.Car) Stats {
	s := Stats{TotalCars: len(cars)}

	modelSet := make(map[string]struct{})
	countrySet := make(map[string]struct{})

	for _, car := range cars {
		s.TotalUnits += car.Quantity
		s.TotalValue += car.TotalValue

		switch car.Status {
		case models.StatusImported:
			s.Imported++
		case models.StatusInTransit:
			s.InTransit++
		case models.StatusReadyForExport:
			s.ReadyForExport++
		}

		modelSet[car.Model] = struct{}{}
		countrySet[car.Country] = struct{}{}
	}

	if s.TotalCars > 0 {
		s.AveragePrice = math.Round(s.TotalValue / float64(s.TotalCars))
	}
	s.UniqueModels = len(modelSet)
	s.Countries = len(countrySet)

	return s
}
