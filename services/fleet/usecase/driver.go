package usecase

import (
	"context"
	"fmt"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// ListDrivers returns one page of drivers visible in the scope
func (uc *FleetUC) ListDrivers(ctx context.Context, scope querybuilder.Filter, page, perPage int) ([]models.Driver, int, error) {
	return uc.fleetRepo.ListDrivers(ctx, scope, page, perPage)
}

// GetDriver returns one driver. Out-of-scope rows read as not found.
func (uc *FleetUC) GetDriver(ctx context.Context, scope querybuilder.Filter, id int64) (*models.Driver, error) {
	driver, err := uc.fleetRepo.GetDriverByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !scope.AdminView() && driver.CompanyID != scope.CompanyID() {
		return nil, apperrors.ErrNotFound
	}
	return driver, nil
}

// RegisterDriver creates a driver record. Company callers always create
// under their own company regardless of the payload; admins must name one.
func (uc *FleetUC) RegisterDriver(ctx context.Context, scope querybuilder.Filter, driver *models.Driver) error {
	if !scope.AdminView() {
		driver.CompanyID = scope.CompanyID()
	}
	if driver.CompanyID <= 0 {
		return querybuilder.ErrMissingCompanyScope
	}

	if driver.Status == "" {
		driver.Status = models.DriverStatusPending
	}
	if _, ok := normalizeDriverStatus(string(driver.Status)); !ok {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, driver.Status)
	}
	if driver.Type == "" {
		driver.Type = models.DriverTypeRegular
	}

	return uc.fleetRepo.CreateDriver(ctx, driver)
}

// UpdateDriverStatus applies a driver status change
func (uc *FleetUC) UpdateDriverStatus(ctx context.Context, scope querybuilder.Filter, id int64, status string) (*models.Driver, error) {
	normalized, ok := normalizeDriverStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, status)
	}

	driver, err := uc.GetDriver(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if driver.Status != normalized {
		if err := uc.fleetRepo.UpdateDriverStatus(ctx, id, normalized); err != nil {
			return nil, err
		}
		driver.Status = normalized
	}
	return driver, nil
}

func normalizeDriverStatus(s string) (models.DriverStatus, bool) {
	switch models.DriverStatus(s) {
	case models.DriverStatusActive, models.DriverStatusPending, models.DriverStatusInactive:
		return models.DriverStatus(s), true
	}
	return "", false
}
