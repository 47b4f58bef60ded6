package query

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/waqarulwahab/autoport/internal/client/models"
)

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	require.Equal(t, Stats{}, got)

	got = Aggregate([]models.Car{})
	require.Equal(t, Stats{}, got)
}

func TestAggregate_KnownExample(t *testing.T) {
	cars := []models.Car{
		{Model: "A", Status: models.StatusImported, Price: 10000, Quantity: 2, TotalValue: 20000, Country: "Japan"},
		{Model: "B", Status: models.StatusInTransit, Price: 20000, Quantity: 1, TotalValue: 20000, Country: "Japan"},
		{Model: "C", Status: models.StatusReadyForExport, Price: 5000, Quantity: 4, TotalValue: 20000, Country: "Germany"},
	}

	got := Aggregate(cars)
	require.Equal(t, 3, got.TotalCars)
	require.Equal(t, 7, got.TotalUnits)
	require.Equal(t, float64(60000), got.TotalValue)
	require.Equal(t, float64(20000), got.AveragePrice)
	require.Equal(t, 1, got.Imported)
	require.Equal(t, 1, got.InTransit)
	require.Equal(t, 1, got.ReadyForExport)
	require.Equal(t, 3, got.UniqueModels)
	require.Equal(t, 2, got.Countries)
}

func TestAggregate_TotalCarsCountsRecords(t *testing.T) {
	cars := sampleInventory()
	got := Aggregate(cars)
	require.Equal(t, len(cars), got.TotalCars)
	require.LessOrEqual(t, got.Imported+got.InTransit+got.ReadyForExport, got.TotalCars)
}

func TestAggregate_UnknownStatusExcludedFromBreakdown(t *testing.T) {
	cars := []models.Car{
		{Model: "A", Status: models.StatusImported},
		{Model: "B", Status: "Pending Review"},
		{Model: "C"},
	}

	got := Aggregate(cars)
	require.Equal(t, 3, got.TotalCars)
	require.Equal(t, 1, got.Imported+got.InTransit+got.ReadyForExport)
}

func TestAggregate_UniqueModelsAreCaseSensitive(t *testing.T) {
	cars := []models.Car{
		{Model: "Toyota Camry"},
		{Model: "toyota camry"},
		{Model: "Toyota Camry"},
	}
	require.Equal(t, 2, Aggregate(cars).UniqueModels)
}

func TestAggregate_MissingNumericFieldsTreatedAsZero(t *testing.T) {
	got := Aggregate([]models.Car{{Model: "A"}, {Model: "B"}})
	require.Equal(t, float64(0), got.TotalValue)
	require.Equal(t, float64(0), got.AveragePrice)
	require.False(t, got.AveragePrice != got.AveragePrice, "average must not be NaN")
}

func TestAggregate_Idempotent(t *testing.T) {
	cars := sampleInventory()
	require.Equal(t, Aggregate(cars), Aggregate(cars))
}
