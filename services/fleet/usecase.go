package fleet

import (
	"context"

	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// FleetUC defines the interface for fleet business logic operations
type FleetUC interface {
	ListDrivers(ctx context.Context, scope querybuilder.Filter, page, perPage int) ([]models.Driver, int, error)
	GetDriver(ctx context.Context, scope querybuilder.Filter, id int64) (*models.Driver, error)
	RegisterDriver(ctx context.Context, scope querybuilder.Filter, driver *models.Driver) error
	UpdateDriverStatus(ctx context.Context, scope querybuilder.Filter, id int64, status string) (*models.Driver, error)

	ListVehicles(ctx context.Context, scope querybuilder.Filter, page, perPage int) ([]models.Vehicle, int, error)
	GetVehicle(ctx context.Context, scope querybuilder.Filter, id int64) (*models.Vehicle, error)
	RegisterVehicle(ctx context.Context, scope querybuilder.Filter, vehicle *models.Vehicle) error
	UpdateVehicleStatus(ctx context.Context, scope querybuilder.Filter, id int64, status string) (*models.Vehicle, error)
}
