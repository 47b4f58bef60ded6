package query

import (
	"strconv"
	"strings"

	"github.com/waqarulwahab/autoport/internal/client/models"
)

// csvHeader matches the columns of the inventory table export.
var csvHeader = []string{"Model", "Year", "Status", "Country", "Quantity", "Price", "Total Value"}

// ExportCSV renders cars as comma-separated text, one row per record in
// input order, after a fixed header row. Missing text fields (and a zero
// year) become "N/A"; missing numeric fields become "0". Pure formatting,
// no error conditions.
func ExportCSV(cars []models.Car) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))

	for _, car := range cars {
		row := []string{
			textOrNA(car.Model),
			yearOrNA(car.Year),
			textOrNA(car.Status),
			textOrNA(car.Country),
			strconv.Itoa(car.Quantity),
			formatAmount(car.Price),
			formatAmount(car.TotalValue),
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, ","))
	}

	return b.String()
}

func textOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yearOrNA(y int) string {
	if y == 0 {
		return "N/A"
	}
	return strconv.Itoa(y)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
