// Package cars persists the local copy of the inventory used in fallback
// mode, when the backend cannot be reached.
package cars

import (
	"context"

	"github.com/waqarulwahab/autoport/internal/client/models"
)

type Repository interface {
	GetAll(ctx context.Context) ([]models.Car, error)
	GetByID(ctx context.Context, id int64) (*models.Car, error)
	CreateOrUpdate(ctx context.Context, car *models.Car) error
	DeleteByID(ctx context.Context, id int64) error
	ReplaceAll(ctx context.Context, cars []models.Car) error
	Count(ctx context.Context) (int, error)
}
