package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// FleetRepo handles driver and vehicle data access against PostgreSQL
type FleetRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFleetRepository creates a new fleet repository
func NewFleetRepository(cfg *models.Config, db *sqlx.DB) *FleetRepo {
	return &FleetRepo{
		cfg: cfg,
		db:  db,
	}
}

const driverColumns = `id, company_id, first_name, last_name, license_number,
		status, type, contact_number, email, created_at, updated_at`

// GetDriverByID retrieves a driver by ID
func (r *FleetRepo) GetDriverByID(ctx context.Context, id int64) (*models.Driver, error) {
	query := fmt.Sprintf(`SELECT %s FROM drivers WHERE id = $1`, driverColumns)

	driver := &models.Driver{}
	err := r.db.GetContext(ctx, driver, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return driver, nil
}

// ListDrivers retrieves one page of drivers matching the filter together
// with the total match count
func (r *FleetRepo) ListDrivers(ctx context.Context, filter querybuilder.Filter, page, perPage int) ([]models.Driver, int, error) {
	desc := querybuilder.BuildDriverQuery(filter)
	paged := querybuilder.Paginate(desc, page, perPage)

	drivers := []models.Driver{}
	if err := r.db.SelectContext(ctx, &drivers, paged.Query, paged.Params...); err != nil {
		return nil, 0, fmt.Errorf("failed to list drivers: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, desc.CountQuery, desc.CountParams...); err != nil {
		return nil, 0, fmt.Errorf("failed to count drivers: %w", err)
	}

	return drivers, total, nil
}

// ListAssignableDrivers retrieves the drivers eligible for booking
// assignment within the scope, ordered by name for candidate lists
func (r *FleetRepo) ListAssignableDrivers(ctx context.Context, filter querybuilder.Filter) ([]models.Driver, error) {
	query := fmt.Sprintf(`SELECT %s FROM drivers WHERE status IN ('active', 'pending')`, driverColumns)
	args := []interface{}{}
	if !filter.AdminView() {
		query += " AND company_id = $1"
		args = append(args, filter.CompanyID())
	}
	query += " ORDER BY first_name, last_name, id"

	drivers := []models.Driver{}
	if err := r.db.SelectContext(ctx, &drivers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list assignable drivers: %w", err)
	}
	return drivers, nil
}

// CreateDriver inserts a new driver and fills in the generated id
func (r *FleetRepo) CreateDriver(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO drivers (
			company_id, first_name, last_name, license_number,
			status, type, contact_number, email
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		driver.CompanyID,
		driver.FirstName,
		driver.LastName,
		driver.LicenseNumber,
		string(driver.Status),
		driver.Type,
		driver.ContactNumber,
		driver.Email,
	).Scan(&driver.ID, &driver.CreatedAt, &driver.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

// UpdateDriverStatus persists a driver status change
func (r *FleetRepo) UpdateDriverStatus(ctx context.Context, id int64, status models.DriverStatus) error {
	query := `UPDATE drivers SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update driver status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
