package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fleetdesk/fleetdesk/internal/pkg/constants"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	natspkg "github.com/fleetdesk/fleetdesk/internal/pkg/nats"
	"github.com/fleetdesk/fleetdesk/internal/pkg/retry"
)

// publisher is the subset of the NATS client the gateway needs
type publisher interface {
	Publish(subject string, data []byte) error
}

// NATSGateway implements the NATS gateway operations for the bookings service
type NATSGateway struct {
	client  publisher
	retrier *retry.Retrier
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client:  client,
		retrier: retry.NewWithDefaults(),
	}
}

// PublishStatusChanged publishes a booking status change event to NATS
func (g *NATSGateway) PublishStatusChanged(ctx context.Context, event *models.BookingEvent) error {
	return g.publish(ctx, constants.SubjectBookingStatusChanged, event)
}

// PublishDriverAssigned publishes a driver assignment event to NATS
func (g *NATSGateway) PublishDriverAssigned(ctx context.Context, event *models.BookingEvent) error {
	return g.publish(ctx, constants.SubjectBookingDriverAssigned, event)
}

// PublishVehicleAssigned publishes a vehicle assignment event to NATS
func (g *NATSGateway) PublishVehicleAssigned(ctx context.Context, event *models.BookingEvent) error {
	return g.publish(ctx, constants.SubjectBookingVehicleAssigned, event)
}

func (g *NATSGateway) publish(ctx context.Context, subject string, event *models.BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.Publish(subject, data)
	})
}
