package dashboard

import (
	"context"

	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// DashboardUC defines the interface for dashboard business logic operations
type DashboardUC interface {
	GetSummary(ctx context.Context, scope querybuilder.Filter) (*models.DashboardSummary, error)
	GetActivity(ctx context.Context, scope querybuilder.Filter, limit int) ([]models.ActivityEntry, error)
	InvalidateSummary(ctx context.Context, companyID int64) error
}
