package dashboard

import (
	"context"

	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// DashboardRepo defines the interface for dashboard aggregate queries
type DashboardRepo interface {
	GetSummary(ctx context.Context, filter querybuilder.Filter) (*models.DashboardSummary, error)
	GetActivity(ctx context.Context, filter querybuilder.Filter, limit int) ([]models.ActivityEntry, error)
}
