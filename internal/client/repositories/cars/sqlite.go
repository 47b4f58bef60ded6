package cars

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/waqarulwahab/autoport/internal/client/models"
	"github.com/waqarulwahab/autoport/internal/common"
	"github.com/waqarulwahab/autoport/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const carColumns = `id, model, year, quantity, price, status, country, image, total_value`

func scanCar(row interface{ Scan(dest ...any) error }, c *models.Car) error {
	return row.Scan(&c.ID, &c.Model, &c.Year, &c.Quantity, &c.Price, &c.Status, &c.Country, &c.Image, &c.TotalValue)
}

// GetAll lists all cached cars in insertion (id) order.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Car, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+carColumns+` FROM cars ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select cars: %w", err)
	}
	defer rows.Close()

	var result []models.Car
	for rows.Next() {
		var item models.Car
		if err := scanCar(rows, &item); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns a single cached car, or common.ErrNotFound.
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Car, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+carColumns+` FROM cars WHERE id = ?`, id)

	c := &models.Car{}
	if err := scanCar(row, c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return c, nil
}

// CreateOrUpdate upserts a car by id.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, car *models.Car) error {
	query := `INSERT INTO cars (` + carColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET model = excluded.model,
				year = excluded.year,
				quantity = excluded.quantity,
				price = excluded.price,
				status = excluded.status,
				country = excluded.country,
				image = excluded.image,
				total_value = excluded.total_value
	`
	_, err := r.db.ExecContext(ctx, query,
		car.ID, car.Model, car.Year, car.Quantity, car.Price, car.Status, car.Country, car.Image, car.TotalValue)
	if err != nil {
		return fmt.Errorf("failed to upsert car: %w", err)
	}
	return nil
}

// DeleteByID removes a car. It expects exactly one row to be affected.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrNotFound
	}
	return nil
}

// ReplaceAll swaps the entire cache for the given collection. When bound to
// a plain *sql.DB the swap runs inside a transaction, so readers never see
// a half-replaced cache.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, cars []models.Car) error {
	if db, ok := r.db.(*sql.DB); ok {
		return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return NewSQLiteRepository(tx).replaceAll(ctx, cars)
		})
	}
	return r.replaceAll(ctx, cars)
}

func (r *SQLiteRepository) replaceAll(ctx context.Context, cars []models.Car) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cars`); err != nil {
		return fmt.Errorf("failed to clear cars: %w", err)
	}
	for i := range cars {
		if err := r.CreateOrUpdate(ctx, &cars[i]); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of cached cars.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cars`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cars: %w", err)
	}
	return n, nil
}
