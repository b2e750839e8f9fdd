package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/fleetdesk/fleetdesk/internal/pkg/constants"
	"github.com/fleetdesk/fleetdesk/internal/pkg/logger"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	natspkg "github.com/fleetdesk/fleetdesk/internal/pkg/nats"
	"github.com/fleetdesk/fleetdesk/services/dashboard"
)

// DashboardHandler consumes booking lifecycle events and invalidates the
// cached summaries they affect
type DashboardHandler struct {
	dashboardUC dashboard.DashboardUC
	natsClient  *natspkg.Client
	subs        []*nats.Subscription
}

// NewDashboardHandler creates a new dashboard NATS handler
func NewDashboardHandler(dashboardUC dashboard.DashboardUC, natsClient *natspkg.Client) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		natsClient:  natsClient,
	}
}

// InitNATSConsumers subscribes to every booking subject. Any booking change
// can move the summary counts, so each event drops the affected cache keys.
func (h *DashboardHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectBookingAll, h.handleBookingEvent)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)
	return nil
}

func (h *DashboardHandler) handleBookingEvent(msg *nats.Msg) {
	var event models.BookingEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("Failed to decode booking event",
			logger.ErrorField(err),
			logger.String("subject", msg.Subject),
		)
		return
	}

	if err := h.dashboardUC.InvalidateSummary(context.Background(), event.CompanyID); err != nil {
		logger.Warn("Failed to invalidate dashboard summary cache",
			logger.ErrorField(err),
			logger.Int64("company_id", event.CompanyID),
			logger.String("subject", msg.Subject),
		)
	}
}
