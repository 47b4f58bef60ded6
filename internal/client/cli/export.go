package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/waqarulwahab/autoport/internal/client/models"
)

// Exports lists the export shipments.
func (a *App) Exports(ctx context.Context) error {
	items, err := a.inventory.ListExports(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		printlnFn("No exports")
		return nil
	}
	for _, e := range items {
		line := fmt.Sprintf("%d  car %d  -> %s  %s", e.ID, e.CarID, e.Destination, e.Status)
		if e.Notes != "" {
			line += "  (" + e.Notes + ")"
		}
		printlnFn(line)
	}
	return nil
}

// AddExport creates a new export shipment for an inventory record.
func (a *App) AddExport(ctx context.Context) error {
	carID, err := GetID(a.reader, "Enter car id to export", os.Stdout)
	if err != nil {
		return err
	}
	destination, err := getSimpleText(a.reader, "Enter destination", os.Stdout)
	if err != nil {
		return err
	}
	notes, err := getSimpleText(a.reader, "Notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.inventory.CreateExport(ctx, &models.Export{
		CarID:       carID,
		Destination: destination,
		Notes:       notes,
	})
	if err != nil {
		return err
	}
	printlnFn("Created export", created.ID)
	return nil
}

// SetExportStatus updates the status of an export shipment.
func (a *App) SetExportStatus(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter export id", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Enter new status", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.inventory.UpdateExportStatus(ctx, id, status); err != nil {
		return err
	}
	printlnFn("Updated")
	return nil
}

// DeleteExport removes an export shipment.
func (a *App) DeleteExport(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter export id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.inventory.DeleteExport(ctx, id); err != nil {
		return err
	}
	printlnFn("Deleted")
	return nil
}
