package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/waqarulwahab/autoport/internal/client/api"
	"github.com/waqarulwahab/autoport/internal/client/models"
	"github.com/waqarulwahab/autoport/internal/client/query"
	"github.com/waqarulwahab/autoport/internal/client/repositories/cars"
	"github.com/waqarulwahab/autoport/internal/common"
)

func onlineList(items []models.Car) func() ([]models.Car, error) {
	return func() ([]models.Car, error) { return items, nil }
}

func TestInventoryList_OnlineRefreshesCache(t *testing.T) {
	ctx := context.Background()
	repo := &memCars{}
	backend := []models.Car{{ID: 1, Model: "Toyota Camry"}, {ID: 2, Model: "Audi A4"}}

	svc := NewInventoryService(&fakeAPI{listFn: onlineList(backend)}, repo, newTestStore())

	items, fromCache, err := svc.List(ctx)
	require.NoError(t, err)
	require.False(t, fromCache)
	require.Equal(t, backend, items)

	cached, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, backend, cached)
}

func TestInventoryList_FallbackSeedsSampleData(t *testing.T) {
	ctx := context.Background()
	repo := &memCars{}

	svc := NewInventoryService(&fakeAPI{}, repo, newTestStore())

	items, fromCache, err := svc.List(ctx)
	require.NoError(t, err)
	require.True(t, fromCache)
	require.Equal(t, cars.SampleCars, items)
}

func TestInventoryList_NonTransportErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	reject := &api.RequestError{Message: "forbidden", Status: 403}
	svc := NewInventoryService(&fakeAPI{listFn: func() ([]models.Car, error) { return nil, reject }}, &memCars{}, newTestStore())

	_, _, err := svc.List(ctx)
	require.ErrorIs(t, err, reject)
}

func TestInventoryCreate_ValidatesBeforeNetwork(t *testing.T) {
	ctx := context.Background()
	called := false
	svc := NewInventoryService(&fakeAPI{createFn: func(car *models.Car) (*models.Car, error) {
		called = true
		return car, nil
	}}, &memCars{}, newTestStore())

	_, err := svc.Create(ctx, &models.Car{Model: ""})
	require.ErrorIs(t, err, common.ErrValidation)
	require.False(t, called, "invalid cars must never reach the network")
}

func TestInventoryCreate_OnlineSetsRefreshFlag(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewInventoryService(&fakeAPI{createFn: func(car *models.Car) (*models.Car, error) {
		c := *car
		c.ID = 99
		return &c, nil
	}}, &memCars{}, store)

	created, err := svc.Create(ctx, &models.Car{Model: "Lexus ES", Year: 2023, Quantity: 2, Price: 38000, Status: models.StatusImported, Country: "Japan"})
	require.NoError(t, err)
	require.Equal(t, int64(99), created.ID)

	refresh, err := store.ConsumeDashboardRefresh(ctx)
	require.NoError(t, err)
	require.True(t, refresh)
}

func TestInventoryCreate_FallbackAssignsLocalID(t *testing.T) {
	ctx := context.Background()
	repo := &memCars{}
	svc := NewInventoryService(&fakeAPI{}, repo, newTestStore())

	created, err := svc.Create(ctx, &models.Car{Model: "Lexus ES", Year: 2023, Quantity: 2, Price: 38000, Status: models.StatusImported, Country: "Japan"})
	require.NoError(t, err)
	require.NotZero(t, created.ID, "fallback mode must assign a local id")
	require.Equal(t, float64(76000), created.TotalValue, "total value is recomputed on write")

	cached, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, cached)
}

func TestInventoryUpdate_FallbackRequiresExistingRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewInventoryService(&fakeAPI{}, &memCars{}, newTestStore())

	_, err := svc.Update(ctx, &models.Car{ID: 404, Model: "Ghost", Year: 2023, Quantity: 1, Price: 1, Status: models.StatusImported, Country: "Nowhere"})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestInventoryDelete_Fallback(t *testing.T) {
	ctx := context.Background()
	repo := &memCars{items: []models.Car{{ID: 5, Model: "Golf"}}}
	store := newTestStore()
	svc := NewInventoryService(&fakeAPI{}, repo, store)

	require.NoError(t, svc.Delete(ctx, 5))

	_, err := repo.GetByID(ctx, 5)
	require.ErrorIs(t, err, common.ErrNotFound)

	refresh, err := store.ConsumeDashboardRefresh(ctx)
	require.NoError(t, err)
	require.True(t, refresh)
}

func TestInventorySearch_PlainTermUsesBackend(t *testing.T) {
	ctx := context.Background()
	want := []models.Car{{ID: 1, Model: "Toyota Camry"}}
	svc := NewInventoryService(&fakeAPI{searchFn: func(q string) ([]models.Car, error) {
		require.Equal(t, "toyota", q)
		return want, nil
	}}, &memCars{}, newTestStore())

	got, fromCache, err := svc.Search(ctx, query.Criteria{Search: "toyota"})
	require.NoError(t, err)
	require.False(t, fromCache)
	require.Equal(t, want, got)
}

func TestInventorySearch_StatusFiltersListing(t *testing.T) {
	ctx := context.Background()
	backend := []models.Car{
		{ID: 1, Model: "Toyota Camry", Status: models.StatusImported},
		{ID: 2, Model: "Audi A4", Status: models.StatusInTransit},
	}
	svc := NewInventoryService(&fakeAPI{listFn: onlineList(backend)}, &memCars{}, newTestStore())

	got, fromCache, err := svc.Search(ctx, query.Criteria{Status: models.StatusInTransit})
	require.NoError(t, err)
	require.False(t, fromCache)
	require.Len(t, got, 1)
	require.Equal(t, int64(2), got[0].ID)
}

func TestInventorySearch_FallbackFiltersCache(t *testing.T) {
	ctx := context.Background()
	repo := &memCars{items: []models.Car{
		{ID: 1, Model: "Toyota Camry", Country: "Japan"},
		{ID: 2, Model: "BMW X5", Country: "Germany"},
	}}
	svc := NewInventoryService(&fakeAPI{}, repo, newTestStore())

	got, fromCache, err := svc.Search(ctx, query.Criteria{Search: "germ"})
	require.NoError(t, err)
	require.True(t, fromCache)
	require.Len(t, got, 1)
	require.Equal(t, "BMW X5", got[0].Model)
}

func TestInventoryStats_PrefersBackend(t *testing.T) {
	ctx := context.Background()
	want := &query.Stats{TotalCars: 12, TotalValue: 1000000}
	svc := NewInventoryService(&fakeAPI{statsFn: func() (*query.Stats, error) { return want, nil }}, &memCars{}, newTestStore())

	got, fromCache, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.False(t, fromCache)
	require.Equal(t, want, got)
}

func TestInventoryStats_FallbackAggregatesLocally(t *testing.T) {
	ctx := context.Background()
	repo := &memCars{items: []models.Car{
		{ID: 1, Model: "A", Status: models.StatusImported, Quantity: 2, Price: 10000, TotalValue: 20000, Country: "Japan"},
		{ID: 2, Model: "B", Status: models.StatusInTransit, Quantity: 1, Price: 20000, TotalValue: 20000, Country: "Japan"},
	}}
	svc := NewInventoryService(&fakeAPI{}, repo, newTestStore())

	got, fromCache, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.True(t, fromCache)
	require.Equal(t, 2, got.TotalCars)
	require.Equal(t, float64(40000), got.TotalValue)
	require.Equal(t, 1, got.Imported)
}
