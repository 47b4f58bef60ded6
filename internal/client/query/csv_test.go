package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/waqarulwahab/autoport/internal/client/models"
)

func TestExportCSV_EmptyReturnsHeaderOnly(t *testing.T) {
	got := ExportCSV(nil)
	require.Equal(t, "Model,Year,Status,Country,Quantity,Price,Total Value", got)
}

func TestExportCSV_RowsFollowInputOrder(t *testing.T) {
	cars := []models.Car{
		{Model: "Toyota Camry", Year: 2023, Status: models.StatusImported, Country: "Japan", Quantity: 15, Price: 25000, TotalValue: 375000},
		{Model: "BMW 3 Series", Year: 2023, Status: models.StatusReadyForExport, Country: "Germany", Quantity: 8, Price: 45000, TotalValue: 360000},
	}

	lines := strings.Split(ExportCSV(cars), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Toyota Camry,2023,Imported,Japan,15,25000,375000", lines[1])
	require.Equal(t, "BMW 3 Series,2023,Ready for Export,Germany,8,45000,360000", lines[2])
}

func TestExportCSV_MissingFieldsSubstituted(t *testing.T) {
	lines := strings.Split(ExportCSV([]models.Car{{}}), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "N/A,N/A,N/A,N/A,0,0,0", lines[1])
}

func TestExportCSV_FractionalPriceKeepsPrecision(t *testing.T) {
	cars := []models.Car{{Model: "Audi A4", Year: 2022, Status: models.StatusInTransit, Country: "Germany", Quantity: 2, Price: 41999.5, TotalValue: 83999}}
	lines := strings.Split(ExportCSV(cars), "\n")
	require.Equal(t, "Audi A4,2022,In Transit,Germany,2,41999.5,83999", lines[1])
}
