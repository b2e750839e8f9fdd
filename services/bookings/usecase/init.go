package usecase

import (
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/services/bookings"
)

// BookingUC implements the booking business logic
type BookingUC struct {
	bookingRepo   bookings.BookingRepo
	candidateRepo bookings.CandidateRepo
	bookingGW     bookings.BookingGW
	cfg           *models.Config
}

// NewBookingUC creates a new booking usecase instance
func NewBookingUC(
	bookingRepo bookings.BookingRepo,
	candidateRepo bookings.CandidateRepo,
	bookingGW bookings.BookingGW,
	cfg *models.Config,
) *BookingUC {
	return &BookingUC{
		bookingRepo:   bookingRepo,
		candidateRepo: candidateRepo,
		bookingGW:     bookingGW,
		cfg:           cfg,
	}
}
