package cli

import (
	"context"
	"fmt"
)

// Dashboard prints the inventory statistics. Backend figures when the
// server is reachable, otherwise an aggregation over the local cache.
func (a *App) Dashboard(ctx context.Context) error {
	stats, fromCache, err := a.inventory.Stats(ctx)
	if err != nil {
		return err
	}
	a.noteSource(ctx, fromCache)

	printlnFn(fmt.Sprintf("Total cars:       %d (%d units)", stats.TotalCars, stats.TotalUnits))
	printlnFn(fmt.Sprintf("Imported:         %d", stats.Imported))
	printlnFn(fmt.Sprintf("In transit:       %d", stats.InTransit))
	printlnFn(fmt.Sprintf("Ready for export: %d", stats.ReadyForExport))
	printlnFn(fmt.Sprintf("Total value:      $%.2f", stats.TotalValue))
	printlnFn(fmt.Sprintf("Average price:    $%.2f", stats.AveragePrice))
	printlnFn(fmt.Sprintf("Unique models:    %d, countries: %d", stats.UniqueModels, stats.Countries))
	return nil
}

// Activities prints the recent-activity feed.
func (a *App) Activities(ctx context.Context) error {
	items, err := a.inventory.Activities(ctx, a.config.ActivityLimit)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		printlnFn("No recent activity")
		return nil
	}
	for _, item := range items {
		line := item.Action
		if item.Details != "" {
			line += ": " + item.Details
		}
		if item.Timestamp != "" {
			line += " (" + item.Timestamp + ")"
		}
		printlnFn(line)
	}
	return nil
}
