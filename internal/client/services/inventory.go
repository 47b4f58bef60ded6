package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/waqarulwahab/autoport/internal/client/api"
	"github.com/waqarulwahab/autoport/internal/client/models"
	"github.com/waqarulwahab/autoport/internal/client/query"
	"github.com/waqarulwahab/autoport/internal/client/repositories/cars"
	"github.com/waqarulwahab/autoport/internal/client/session"
	"github.com/waqarulwahab/autoport/internal/common"
)

// InventoryService manages the car inventory: online CRUD against the
// backend with a local cache fallback when the server is unreachable.
//
// The backend stays the durable owner of every record. Online reads refresh
// the local cache; fallback writes touch only the cache and are not synced
// back.
type InventoryService interface {
	// List returns the inventory. fromCache reports fallback mode.
	List(ctx context.Context) (items []models.Car, fromCache bool, err error)
	// Search filters the inventory. The backend's search endpoint serves
	// plain term queries; anything else is filtered client-side over the
	// listing.
	Search(ctx context.Context, criteria query.Criteria) ([]models.Car, bool, error)
	Get(ctx context.Context, id int64) (*models.Car, error)
	Create(ctx context.Context, car *models.Car) (*models.Car, error)
	Update(ctx context.Context, car *models.Car) (*models.Car, error)
	Delete(ctx context.Context, id int64) error

	// Stats prefers the backend-computed aggregate and recomputes locally
	// in fallback mode.
	Stats(ctx context.Context) (*query.Stats, bool, error)
	Activities(ctx context.Context, limit int) ([]models.Activity, error)

	ListExports(ctx context.Context) ([]models.Export, error)
	CreateExport(ctx context.Context, exp *models.Export) (*models.Export, error)
	UpdateExportStatus(ctx context.Context, id int64, status string) error
	DeleteExport(ctx context.Context, id int64) error
}

type inventoryService struct {
	client api.Client
	repo   cars.Repository
	store  *session.Store
	now    func() time.Time
}

// NewInventoryService constructs an InventoryService bound to the given
// API client, local cache and session store.
func NewInventoryService(client api.Client, repo cars.Repository, store *session.Store) InventoryService {
	return &inventoryService{client: client, repo: repo, store: store, now: time.Now}
}

// local reports whether err should push the operation into fallback mode.
func local(err error) bool {
	return errors.Is(err, common.ErrUnavailable)
}

func (s *inventoryService) List(ctx context.Context) ([]models.Car, bool, error) {
	items, err := s.client.ListCars(ctx)
	if err == nil {
		// Keep the offline copy current while the backend is reachable.
		_ = s.repo.ReplaceAll(ctx, items)
		return items, false, nil
	}
	if !local(err) {
		return nil, false, err
	}

	if err := cars.SeedIfEmpty(ctx, s.repo); err != nil {
		return nil, true, fmt.Errorf("%w: %v", common.ErrLocalDataNotAvailable, err)
	}
	items, err = s.repo.GetAll(ctx)
	if err != nil {
		return nil, true, err
	}
	return items, true, nil
}

func (s *inventoryService) Search(ctx context.Context, criteria query.Criteria) ([]models.Car, bool, error) {
	if criteria.Search != "" && criteria.Status == "" {
		items, err := s.client.Search(ctx, criteria.Search)
		if err == nil {
			return items, false, nil
		}
		if !local(err) {
			return nil, false, err
		}
		// Backend down, filter the cached listing instead.
	}

	items, fromCache, err := s.List(ctx)
	if err != nil {
		return nil, fromCache, err
	}
	return query.Filter(items, criteria), fromCache, nil
}

func (s *inventoryService) Get(ctx context.Context, id int64) (*models.Car, error) {
	car, err := s.client.GetCar(ctx, id)
	if err == nil {
		return car, nil
	}
	if !local(err) {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *inventoryService) Create(ctx context.Context, car *models.Car) (*models.Car, error) {
	if errs := models.ValidateCar(car, s.now()); errs != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrValidation, errs.Error())
	}
	car.RecomputeTotalValue()

	created, err := s.client.CreateCar(ctx, car)
	if err == nil {
		_ = s.store.RequestDashboardRefresh(ctx)
		return created, nil
	}
	if !local(err) {
		return nil, err
	}

	// Fallback mode: assign a local id and keep the invariant
	// total value = quantity x price.
	car.ID = models.NewLocalID(s.now())
	car.RecomputeTotalValue()
	if err := s.repo.CreateOrUpdate(ctx, car); err != nil {
		return nil, err
	}
	_ = s.store.RequestDashboardRefresh(ctx)
	return car, nil
}

func (s *inventoryService) Update(ctx context.Context, car *models.Car) (*models.Car, error) {
	if errs := models.ValidateCar(car, s.now()); errs != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrValidation, errs.Error())
	}
	car.RecomputeTotalValue()

	updated, err := s.client.UpdateCar(ctx, car)
	if err == nil {
		_ = s.store.RequestDashboardRefresh(ctx)
		return updated, nil
	}
	if !local(err) {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, car.ID); err != nil {
		return nil, err
	}
	if err := s.repo.CreateOrUpdate(ctx, car); err != nil {
		return nil, err
	}
	_ = s.store.RequestDashboardRefresh(ctx)
	return car, nil
}

func (s *inventoryService) Delete(ctx context.Context, id int64) error {
	err := s.client.DeleteCar(ctx, id)
	if err == nil {
		_ = s.store.RequestDashboardRefresh(ctx)
		return nil
	}
	if !local(err) {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	_ = s.store.RequestDashboardRefresh(ctx)
	return nil
}

func (s *inventoryService) Stats(ctx context.Context) (*query.Stats, bool, error) {
	// The dashboard always fetches fresh figures, which satisfies any
	// pending refresh request. Consume the flag so it does not go stale.
	_, _ = s.store.ConsumeDashboardRefresh(ctx)

	stats, err := s.client.DashboardStats(ctx)
	if err == nil {
		return stats, false, nil
	}
	if !local(err) {
		return nil, false, err
	}

	if err := cars.SeedIfEmpty(ctx, s.repo); err != nil {
		return nil, true, fmt.Errorf("%w: %v", common.ErrLocalDataNotAvailable, err)
	}
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, true, err
	}
	agg := query.Aggregate(items)
	return &agg, true, nil
}

func (s *inventoryService) Activities(ctx context.Context, limit int) ([]models.Activity, error) {
	return s.client.RecentActivities(ctx, limit)
}

func (s *inventoryService) ListExports(ctx context.Context) ([]models.Export, error) {
	return s.client.ListExports(ctx)
}

func (s *inventoryService) CreateExport(ctx context.Context, exp *models.Export) (*models.Export, error) {
	return s.client.CreateExport(ctx, exp)
}

func (s *inventoryService) UpdateExportStatus(ctx context.Context, id int64, status string) error {
	return s.client.UpdateExportStatus(ctx, id, status)
}

func (s *inventoryService) DeleteExport(ctx context.Context, id int64) error {
	return s.client.DeleteExport(ctx, id)
}
