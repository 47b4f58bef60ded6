package cars

import (
	"context"

	"github.com/waqarulwahab/autoport/internal/client/models"
)

// SampleCars is the inventory the cache is seeded with the first time
// fallback mode is entered, so the application stays usable before the
// backend has ever been reached.
var SampleCars = []models.Car{
	{ID: 1, Model: "Toyota Camry", Year: 2023, Quantity: 15, Price: 25000, Status: models.StatusImported, Country: "Japan", Image: "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=400&h=300&fit=crop", TotalValue: 375000},
	{ID: 2, Model: "Honda Civic", Year: 2023, Quantity: 12, Price: 22000, Status: models.StatusInTransit, Country: "Japan", Image: "https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=400&h=300&fit=crop", TotalValue: 264000},
	{ID: 3, Model: "BMW 3 Series", Year: 2023, Quantity: 8, Price: 45000, Status: models.StatusReadyForExport, Country: "Germany", Image: "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=400&h=300&fit=crop", TotalValue: 360000},
	{ID: 4, Model: "Mercedes C-Class", Year: 2023, Quantity: 10, Price: 48000, Status: models.StatusImported, Country: "Germany", Image: "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=400&h=300&fit=crop", TotalValue: 480000},
	{ID: 5, Model: "Audi A4", Year: 2023, Quantity: 6, Price: 42000, Status: models.StatusInTransit, Country: "Germany", Image: "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=400&h=300&fit=crop", TotalValue: 252000},
	{ID: 6, Model: "Lexus ES", Year: 2023, Quantity: 9, Price: 38000, Status: models.StatusReadyForExport, Country: "Japan", Image: "https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?w=400&h=300&fit=crop", TotalValue: 342000},
	{ID: 7, Model: "Volkswagen Golf", Year: 2023, Quantity: 20, Price: 28000, Status: models.StatusImported, Country: "Germany", Image: "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=400&h=300&fit=crop", TotalValue: 560000},
	{ID: 8, Model: "Hyundai Sonata", Year: 2023, Quantity: 14, Price: 24000, Status: models.StatusInTransit, Country: "South Korea", Image: "https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=400&h=300&fit=crop", TotalValue: 336000},
}

// SeedIfEmpty loads SampleCars into repo when the cache holds no records.
func SeedIfEmpty(ctx context.Context, repo Repository) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return repo.ReplaceAll(ctx, SampleCars)
}
