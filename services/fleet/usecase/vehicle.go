package usecase

import (
	"context"
	"fmt"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// ListVehicles returns one page of vehicles visible in the scope
func (uc *FleetUC) ListVehicles(ctx context.Context, scope querybuilder.Filter, page, perPage int) ([]models.Vehicle, int, error) {
	return uc.fleetRepo.ListVehicles(ctx, scope, page, perPage)
}

// GetVehicle returns one vehicle. Out-of-scope rows read as not found.
func (uc *FleetUC) GetVehicle(ctx context.Context, scope querybuilder.Filter, id int64) (*models.Vehicle, error) {
	vehicle, err := uc.fleetRepo.GetVehicleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !scope.AdminView() && vehicle.CompanyID != scope.CompanyID() {
		return nil, apperrors.ErrNotFound
	}
	return vehicle, nil
}

// RegisterVehicle creates a vehicle record under the caller's company
func (uc *FleetUC) RegisterVehicle(ctx context.Context, scope querybuilder.Filter, vehicle *models.Vehicle) error {
	if !scope.AdminView() {
		vehicle.CompanyID = scope.CompanyID()
	}
	if vehicle.CompanyID <= 0 {
		return querybuilder.ErrMissingCompanyScope
	}

	if vehicle.Status == "" {
		vehicle.Status = models.VehicleStatusPending
	}
	if _, ok := normalizeVehicleStatus(string(vehicle.Status)); !ok {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, vehicle.Status)
	}
	if vehicle.Ownership == "" {
		vehicle.Ownership = models.VehicleOwnershipCompany
	}

	return uc.fleetRepo.CreateVehicle(ctx, vehicle)
}

// UpdateVehicleStatus applies a vehicle status change
func (uc *FleetUC) UpdateVehicleStatus(ctx context.Context, scope querybuilder.Filter, id int64, status string) (*models.Vehicle, error) {
	normalized, ok := normalizeVehicleStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, status)
	}

	vehicle, err := uc.GetVehicle(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if vehicle.Status != normalized {
		if err := uc.fleetRepo.UpdateVehicleStatus(ctx, id, normalized); err != nil {
			return nil, err
		}
		vehicle.Status = normalized
	}
	return vehicle, nil
}

func normalizeVehicleStatus(s string) (models.VehicleStatus, bool) {
	switch models.VehicleStatus(s) {
	case models.VehicleStatusActive, models.VehicleStatusPending, models.VehicleStatusInactive:
		return models.VehicleStatus(s), true
	}
	return "", false
}
