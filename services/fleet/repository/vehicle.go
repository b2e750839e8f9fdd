package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

const vehicleColumns = `id, company_id, plate_number, status, ownership,
		make, model, year, color, created_at, updated_at`

// GetVehicleByID retrieves a vehicle by ID
func (r *FleetRepo) GetVehicleByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE id = $1`, vehicleColumns)

	vehicle := &models.Vehicle{}
	err := r.db.GetContext(ctx, vehicle, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicle, nil
}

// ListVehicles retrieves one page of vehicles matching the filter together
// with the total match count
func (r *FleetRepo) ListVehicles(ctx context.Context, filter querybuilder.Filter, page, perPage int) ([]models.Vehicle, int, error) {
	desc := querybuilder.BuildVehicleQuery(filter)
	paged := querybuilder.Paginate(desc, page, perPage)

	vehicles := []models.Vehicle{}
	if err := r.db.SelectContext(ctx, &vehicles, paged.Query, paged.Params...); err != nil {
		return nil, 0, fmt.Errorf("failed to list vehicles: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, desc.CountQuery, desc.CountParams...); err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	return vehicles, total, nil
}

// ListAssignableVehicles retrieves the vehicles eligible for booking
// assignment within the scope, ordered by plate for candidate lists
func (r *FleetRepo) ListAssignableVehicles(ctx context.Context, filter querybuilder.Filter) ([]models.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE status IN ('active', 'pending')`, vehicleColumns)
	args := []interface{}{}
	if !filter.AdminView() {
		query += " AND company_id = $1"
		args = append(args, filter.CompanyID())
	}
	query += " ORDER BY plate_number, id"

	vehicles := []models.Vehicle{}
	if err := r.db.SelectContext(ctx, &vehicles, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list assignable vehicles: %w", err)
	}
	return vehicles, nil
}

// CreateVehicle inserts a new vehicle and fills in the generated id
func (r *FleetRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (
			company_id, plate_number, status, ownership,
			make, model, year, color
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		vehicle.CompanyID,
		vehicle.PlateNumber,
		string(vehicle.Status),
		vehicle.Ownership,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.Color,
	).Scan(&vehicle.ID, &vehicle.CreatedAt, &vehicle.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// UpdateVehicleStatus persists a vehicle status change
func (r *FleetRepo) UpdateVehicleStatus(ctx context.Context, id int64, status models.VehicleStatus) error {
	query := `UPDATE vehicles SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update vehicle status: %w", err)
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
