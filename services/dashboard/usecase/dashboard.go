package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/pkg/constants"
	"github.com/fleetdesk/fleetdesk/internal/pkg/database"
	"github.com/fleetdesk/fleetdesk/internal/pkg/logger"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
	"github.com/fleetdesk/fleetdesk/services/dashboard"
)

// DashboardUC implements the dashboard business logic with a Redis cache in
// front of the aggregate queries
type DashboardUC struct {
	dashboardRepo dashboard.DashboardRepo
	redisClient   *database.RedisClient
	cfg           *models.Config
}

// NewDashboardUC creates a new dashboard usecase instance
func NewDashboardUC(
	dashboardRepo dashboard.DashboardRepo,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *DashboardUC {
	return &DashboardUC{
		dashboardRepo: dashboardRepo,
		redisClient:   redisClient,
		cfg:           cfg,
	}
}

// GetSummary returns the dashboard summary for the scope, serving from cache
// when possible. Date-windowed requests bypass the cache; only the unwindowed
// default view is cached per scope.
func (uc *DashboardUC) GetSummary(ctx context.Context, scope querybuilder.Filter) (*models.DashboardSummary, error) {
	cacheable := scope.DateFrom == nil && scope.DateTo == nil
	key := fmt.Sprintf(constants.KeyDashboardSummary, scopeKey(scope))

	if cacheable {
		if cached, err := uc.redisClient.Get(ctx, key); err == nil {
			summary := &models.DashboardSummary{}
			if err := json.Unmarshal([]byte(cached), summary); err == nil {
				return summary, nil
			}
		}
	}

	summary, err := uc.dashboardRepo.GetSummary(ctx, scope)
	if err != nil {
		return nil, err
	}

	if cacheable {
		data, err := json.Marshal(summary)
		if err == nil {
			ttl := time.Duration(uc.cfg.Dashboard.SummaryCacheTTL) * time.Second
			if err := uc.redisClient.Set(ctx, key, data, ttl); err != nil {
				logger.Warn("Failed to cache dashboard summary",
					logger.ErrorField(err),
					logger.String("key", key),
				)
			}
		}
	}
	return summary, nil
}

// GetActivity returns the merged activity feed for the scope, limited to the
// configured activity window
func (uc *DashboardUC) GetActivity(ctx context.Context, scope querybuilder.Filter, limit int) ([]models.ActivityEntry, error) {
	if scope.DateFrom == nil && uc.cfg.Dashboard.ActivityWindow > 0 {
		from := time.Now().AddDate(0, 0, -uc.cfg.Dashboard.ActivityWindow)
		scope.DateFrom = &from
	}
	return uc.dashboardRepo.GetActivity(ctx, scope, limit)
}

// InvalidateSummary drops the cached summary for a company and the admin
// view. A zero company id drops every scope.
func (uc *DashboardUC) InvalidateSummary(ctx context.Context, companyID int64) error {
	if companyID <= 0 {
		return uc.redisClient.DeleteByPattern(ctx, constants.KeyDashboardSummaryPattern)
	}
	return uc.redisClient.Delete(ctx,
		fmt.Sprintf(constants.KeyDashboardSummary, strconv.FormatInt(companyID, 10)),
		fmt.Sprintf(constants.KeyDashboardSummary, adminScopeKey),
	)
}

const adminScopeKey = "admin"

func scopeKey(scope querybuilder.Filter) string {
	if scope.AdminView() {
		return adminScopeKey
	}
	return strconv.FormatInt(scope.CompanyID(), 10)
}
