package usecase

import (
	"context"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/pkg/logger"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// AvailableDrivers returns the assignable drivers not currently committed to
// an active booking. Drivers held by a terminal booking are available again.
// Passing the booking being edited as excludeBookingID keeps its own driver
// in the candidate list, so reassignment screens can show the current choice.
func (uc *BookingUC) AvailableDrivers(ctx context.Context, scope querybuilder.Filter, excludeBookingID int64) ([]models.Driver, error) {
	unavailable, err := uc.unavailableResources(ctx, excludeBookingID)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.candidateRepo.ListAssignableDrivers(ctx, scope)
	if err != nil {
		return nil, err
	}

	available := []models.Driver{}
	for _, d := range candidates {
		if _, held := unavailable.drivers[d.ID]; held {
			continue
		}
		available = append(available, d)
	}
	return available, nil
}

// AvailableVehicles returns the assignable vehicles not currently committed
// to an active booking, with the same exclusion rule as AvailableDrivers.
func (uc *BookingUC) AvailableVehicles(ctx context.Context, scope querybuilder.Filter, excludeBookingID int64) ([]models.Vehicle, error) {
	unavailable, err := uc.unavailableResources(ctx, excludeBookingID)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.candidateRepo.ListAssignableVehicles(ctx, scope)
	if err != nil {
		return nil, err
	}

	available := []models.Vehicle{}
	for _, v := range candidates {
		if _, held := unavailable.vehicles[v.ID]; held {
			continue
		}
		available = append(available, v)
	}
	return available, nil
}

// AssignDriver sets or clears the booking's driver. The repository applies
// the assignment conditionally, so a driver grabbed by a concurrent
// assignment surfaces as a conflict instead of a double booking.
func (uc *BookingUC) AssignDriver(ctx context.Context, scope querybuilder.Filter, bookingID int64, driverID *int64) (*models.Booking, error) {
	booking, err := uc.GetBooking(ctx, scope, bookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.bookingRepo.AssignDriver(ctx, bookingID, driverID); err != nil {
		return nil, err
	}

	booking.DriverID = driverID
	uc.publishAssignment(ctx, booking, uc.bookingGW.PublishDriverAssigned)
	return booking, nil
}

// AssignVehicle sets or clears the booking's vehicle
func (uc *BookingUC) AssignVehicle(ctx context.Context, scope querybuilder.Filter, bookingID int64, vehicleID *int64) (*models.Booking, error) {
	booking, err := uc.GetBooking(ctx, scope, bookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.bookingRepo.AssignVehicle(ctx, bookingID, vehicleID); err != nil {
		return nil, err
	}

	booking.VehicleID = vehicleID
	uc.publishAssignment(ctx, booking, uc.bookingGW.PublishVehicleAssigned)
	return booking, nil
}

type heldResources struct {
	drivers  map[int64]struct{}
	vehicles map[int64]struct{}
}

// unavailableResources collects the driver and vehicle ids held by active
// bookings other than the one being edited.
func (uc *BookingUC) unavailableResources(ctx context.Context, excludeBookingID int64) (heldResources, error) {
	held := heldResources{
		drivers:  map[int64]struct{}{},
		vehicles: map[int64]struct{}{},
	}

	active, err := uc.bookingRepo.ListActiveBookings(ctx, excludeBookingID)
	if err != nil {
		return held, err
	}

	for _, b := range active {
		if b.DriverID != nil {
			held.drivers[*b.DriverID] = struct{}{}
		}
		if b.VehicleID != nil {
			held.vehicles[*b.VehicleID] = struct{}{}
		}
	}
	return held, nil
}

func (uc *BookingUC) publishAssignment(ctx context.Context, booking *models.Booking, publish func(context.Context, *models.BookingEvent) error) {
	event := &models.BookingEvent{
		BookingID:  booking.ID,
		Voucher:    booking.Voucher,
		CompanyID:  booking.CompanyID,
		Status:     string(booking.BookingStatus),
		DriverID:   booking.DriverID,
		VehicleID:  booking.VehicleID,
		OccurredAt: time.Now(),
	}
	if err := publish(ctx, event); err != nil {
		logger.Error("Failed to publish booking assignment",
			logger.ErrorField(err),
			logger.Int64("booking_id", booking.ID),
		)
	}
}
