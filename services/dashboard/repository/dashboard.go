package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// DashboardRepo executes the dashboard aggregate queries against PostgreSQL
type DashboardRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(cfg *models.Config, db *sqlx.DB) *DashboardRepo {
	return &DashboardRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetSummary runs the driver, vehicle and booking aggregates for the scope
func (r *DashboardRepo) GetSummary(ctx context.Context, filter querybuilder.Filter) (*models.DashboardSummary, error) {
	set := querybuilder.BuildSummaryQueries(filter)
	summary := &models.DashboardSummary{}

	if err := r.db.GetContext(ctx, &summary.Drivers, set.Drivers.Query, set.Drivers.Params...); err != nil {
		return nil, fmt.Errorf("failed to get driver summary: %w", err)
	}
	if err := r.db.GetContext(ctx, &summary.Vehicles, set.Vehicles.Query, set.Vehicles.Params...); err != nil {
		return nil, fmt.Errorf("failed to get vehicle summary: %w", err)
	}
	if err := r.db.GetContext(ctx, &summary.Bookings, set.Bookings.Query, set.Bookings.Params...); err != nil {
		return nil, fmt.Errorf("failed to get booking summary: %w", err)
	}
	return summary, nil
}

// GetActivity runs the merged activity feed query for the scope
func (r *DashboardRepo) GetActivity(ctx context.Context, filter querybuilder.Filter, limit int) ([]models.ActivityEntry, error) {
	agg := querybuilder.BuildActivityQuery(filter, limit)

	entries := []models.ActivityEntry{}
	if err := r.db.SelectContext(ctx, &entries, agg.Query, agg.Params...); err != nil {
		return nil, fmt.Errorf("failed to get activity feed: %w", err)
	}
	return entries, nil
}
