package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/logger"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// ListBookings returns one page of bookings visible in the scope
func (uc *BookingUC) ListBookings(ctx context.Context, scope querybuilder.Filter, page, perPage int) ([]models.Booking, int, error) {
	return uc.bookingRepo.ListBookings(ctx, scope, page, perPage)
}

// GetBooking returns one booking. A booking outside the caller's scope is
// reported as not found, never as forbidden, so ids cannot be probed.
func (uc *BookingUC) GetBooking(ctx context.Context, scope querybuilder.Filter, id int64) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !scope.AdminView() && booking.CompanyID != scope.CompanyID() {
		return nil, apperrors.ErrNotFound
	}
	return booking, nil
}

// UpdateBookingStatus applies a status transition. The requested status is
// normalized first, so legacy names drive the same transitions as canonical
// ones. Repeating the current status is a no-op rather than an error.
func (uc *BookingUC) UpdateBookingStatus(ctx context.Context, scope querybuilder.Filter, id int64, requested string) (*models.Booking, error) {
	target, ok := models.NormalizeBookingStatus(requested)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, requested)
	}

	booking, err := uc.GetBooking(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	// The stored status can still carry a legacy alias, so it is normalized
	// the same way as the requested one before the transition check.
	current := booking.BookingStatus.Canonical()
	if current == target {
		return booking, nil
	}
	if !models.CanTransition(current, target) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidTransition, current, target)
	}

	if err := uc.bookingRepo.UpdateBookingStatus(ctx, id, target); err != nil {
		return nil, err
	}

	prev := current
	booking.BookingStatus = target
	uc.publishStatusChanged(ctx, booking, prev)
	return booking, nil
}

// publishStatusChanged emits the lifecycle event. The status change is
// already persisted, so a publish failure is logged and not surfaced.
func (uc *BookingUC) publishStatusChanged(ctx context.Context, booking *models.Booking, prev models.BookingStatus) {
	event := &models.BookingEvent{
		BookingID:  booking.ID,
		Voucher:    booking.Voucher,
		CompanyID:  booking.CompanyID,
		Status:     string(booking.BookingStatus),
		PrevStatus: string(prev),
		DriverID:   booking.DriverID,
		VehicleID:  booking.VehicleID,
		OccurredAt: time.Now(),
	}
	if err := uc.bookingGW.PublishStatusChanged(ctx, event); err != nil {
		logger.Error("Failed to publish booking status change",
			logger.ErrorField(err),
			logger.Int64("booking_id", booking.ID),
		)
	}
}
