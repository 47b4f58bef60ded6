package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/waqarulwahab/autoport/internal/client/models"
	"github.com/waqarulwahab/autoport/internal/client/query"
)

func formatCar(c models.Car) string {
	return fmt.Sprintf("%d  %s (%d)  %s  %s  qty %d  $%.2f  total $%.2f",
		c.ID, c.Model, c.Year, c.Status, c.Country, c.Quantity, c.Price, c.TotalValue)
}

func (a *App) printCars(cars []models.Car) {
	if len(cars) == 0 {
		printlnFn("No cars found")
		return
	}
	for _, c := range cars {
		printlnFn(formatCar(c))
	}
}

// List prints the whole inventory. When the backend is unreachable the
// local cache is shown instead and the prompt flips to fallback mode.
func (a *App) List(ctx context.Context) error {
	cars, fromCache, err := a.inventory.List(ctx)
	if err != nil {
		return err
	}
	a.noteSource(ctx, fromCache)
	a.printCars(cars)
	return nil
}

// Find filters the inventory by a model/country search term and an exact
// status, both optional.
func (a *App) Find(ctx context.Context) error {
	search, err := getSimpleText(a.reader, "Search model or country (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader,
		"Status, one of: "+strings.Join(models.KnownStatuses, ", ")+" (empty for any)", os.Stdout)
	if err != nil {
		return err
	}

	cars, fromCache, err := a.inventory.Search(ctx, query.Criteria{Search: search, Status: status})
	if err != nil {
		return err
	}
	a.noteSource(ctx, fromCache)
	a.printCars(cars)
	return nil
}

// Show fetches and displays a single record by ID.
func (a *App) Show(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter record id to show", os.Stdout)
	if err != nil {
		return err
	}

	car, err := a.inventory.Get(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(formatCar(*car))
	if car.Image != "" {
		printlnFn("Image:", car.Image)
	}
	return nil
}

// carForm prompts for the editable fields of a record. The current values
// act as defaults so an edit can keep fields by pressing Enter.
func (a *App) carForm(current models.Car) (*models.Car, error) {
	car := current

	model, err := getSimpleText(a.reader, prompt("Model", current.Model), os.Stdout)
	if err != nil {
		return nil, err
	}
	if model != "" {
		car.Model = model
	}

	car.Year, err = GetInt(a.reader, prompt("Year", current.Year), current.Year, os.Stdout)
	if err != nil {
		return nil, err
	}

	car.Quantity, err = GetInt(a.reader, prompt("Quantity", current.Quantity), current.Quantity, os.Stdout)
	if err != nil {
		return nil, err
	}

	car.Price, err = GetFloat(a.reader, prompt("Price", current.Price), current.Price, os.Stdout)
	if err != nil {
		return nil, err
	}

	status, err := getSimpleText(a.reader,
		prompt("Status, one of: "+strings.Join(models.KnownStatuses, ", "), current.Status), os.Stdout)
	if err != nil {
		return nil, err
	}
	if status != "" {
		car.Status = status
	}

	country, err := getSimpleText(a.reader, prompt("Country", current.Country), os.Stdout)
	if err != nil {
		return nil, err
	}
	if country != "" {
		car.Country = country
	}

	return &car, nil
}

// prompt renders a field prompt with the current value when one exists.
func prompt(label string, current any) string {
	switch v := current.(type) {
	case string:
		if v != "" {
			return fmt.Sprintf("%s [%s]", label, v)
		}
	case int:
		if v != 0 {
			return fmt.Sprintf("%s [%d]", label, v)
		}
	case float64:
		if v != 0 {
			return fmt.Sprintf("%s [%v]", label, v)
		}
	}
	return label
}

// Add collects the fields of a new record and creates it. In fallback mode
// the record is stored locally with a generated id.
func (a *App) Add(ctx context.Context) error {
	car, err := a.carForm(models.Car{})
	if err != nil {
		return err
	}

	created, err := a.inventory.Create(ctx, car)
	if err != nil {
		return err
	}
	printlnFn("Created:", formatCar(*created))
	return nil
}

// Edit updates an existing record, pre-filling the form with its current
// values.
func (a *App) Edit(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter record id to edit", os.Stdout)
	if err != nil {
		return err
	}

	current, err := a.inventory.Get(ctx, id)
	if err != nil {
		return err
	}

	car, err := a.carForm(*current)
	if err != nil {
		return err
	}

	updated, err := a.inventory.Update(ctx, car)
	if err != nil {
		return err
	}
	printlnFn("Updated:", formatCar(*updated))
	return nil
}

// Delete removes a record by its identifier, prompting the user for the ID.
func (a *App) Delete(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter record id to delete", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := GetYesNo(a.reader, fmt.Sprintf("Delete record %d?", id), false, os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.inventory.Delete(ctx, id); err != nil {
		return err
	}
	printlnFn("Deleted")
	return nil
}

// ExportCSV writes the current inventory listing to a CSV file.
func (a *App) ExportCSV(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Output file [inventory.csv]", os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		path = "inventory.csv"
	}

	cars, fromCache, err := a.inventory.List(ctx)
	if err != nil {
		return err
	}
	a.noteSource(ctx, fromCache)

	if err := os.WriteFile(path, []byte(query.ExportCSV(cars)), 0o644); err != nil {
		return err
	}
	printlnFn("Saved", len(cars), "records to", path)
	return nil
}
