package fleet

import (
	"context"

	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// FleetRepo defines the interface for driver and vehicle data access
// operations. ListAssignableDrivers and ListAssignableVehicles also satisfy
// the booking service's candidate repository contract.
type FleetRepo interface {
	GetDriverByID(ctx context.Context, id int64) (*models.Driver, error)
	ListDrivers(ctx context.Context, filter querybuilder.Filter, page, perPage int) ([]models.Driver, int, error)
	ListAssignableDrivers(ctx context.Context, filter querybuilder.Filter) ([]models.Driver, error)
	CreateDriver(ctx context.Context, driver *models.Driver) error
	UpdateDriverStatus(ctx context.Context, id int64, status models.DriverStatus) error

	GetVehicleByID(ctx context.Context, id int64) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, filter querybuilder.Filter, page, perPage int) ([]models.Vehicle, int, error)
	ListAssignableVehicles(ctx context.Context, filter querybuilder.Filter) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	UpdateVehicleStatus(ctx context.Context, id int64, status models.VehicleStatus) error
}
