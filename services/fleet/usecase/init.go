package usecase

import (
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/services/fleet"
)

// FleetUC implements the fleet business logic
type FleetUC struct {
	fleetRepo fleet.FleetRepo
	cfg       *models.Config
}

// NewFleetUC creates a new fleet usecase instance
func NewFleetUC(fleetRepo fleet.FleetRepo, cfg *models.Config) *FleetUC {
	return &FleetUC{
		fleetRepo: fleetRepo,
		cfg:       cfg,
	}
}
