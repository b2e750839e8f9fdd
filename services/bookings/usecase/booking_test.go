package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
	"github.com/fleetdesk/fleetdesk/services/bookings/mocks"
)

type bookingUCMocks struct {
	bookingRepo   *mocks.MockBookingRepo
	candidateRepo *mocks.MockCandidateRepo
	bookingGW     *mocks.MockBookingGW
}

func setupBookingUCTest(t *testing.T) (*BookingUC, bookingUCMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := bookingUCMocks{
		bookingRepo:   mocks.NewMockBookingRepo(ctrl),
		candidateRepo: mocks.NewMockCandidateRepo(ctrl),
		bookingGW:     mocks.NewMockBookingGW(ctrl),
	}
	uc := NewBookingUC(m.bookingRepo, m.candidateRepo, m.bookingGW, &models.Config{})
	return uc, m
}

func companyScope(t *testing.T, companyID int64) querybuilder.Filter {
	f, err := querybuilder.NewCompanyFilter(companyID)
	require.NoError(t, err)
	return f
}

func testBooking(id, companyID int64, status models.BookingStatus) *models.Booking {
	return &models.Booking{
		ID:            id,
		Voucher:       "BK-0001",
		CompanyID:     companyID,
		BookingStatus: status,
		PaymentStatus: "pending",
	}
}

func TestGetBooking(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, m := setupBookingUCTest(t)
		m.bookingRepo.EXPECT().
			GetBookingByID(gomock.Any(), int64(1)).
			Return(testBooking(1, 7, models.BookingStatusRequest), nil)

		booking, err := uc.GetBooking(context.Background(), companyScope(t, 7), 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), booking.ID)
	})

	t.Run("Other Company Booking Reads As Not Found", func(t *testing.T) {
		uc, m := setupBookingUCTest(t)
		m.bookingRepo.EXPECT().
			GetBookingByID(gomock.Any(), int64(1)).
			Return(testBooking(1, 8, models.BookingStatusRequest), nil)

		booking, err := uc.GetBooking(context.Background(), companyScope(t, 7), 1)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, booking)
	})

	t.Run("Admin Sees Any Company", func(t *testing.T) {
		uc, m := setupBookingUCTest(t)
		m.bookingRepo.EXPECT().
			GetBookingByID(gomock.Any(), int64(1)).
			Return(testBooking(1, 8, models.BookingStatusRequest), nil)

		booking, err := uc.GetBooking(context.Background(), querybuilder.NewAdminFilter(), 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(8), booking.CompanyID)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	testCases := []struct {
		name       string
		current    models.BookingStatus
		requested  string
		mockSetup  func(m bookingUCMocks)
		assertFunc func(t *testing.T, booking *models.Booking, err error)
	}{
		{
			name:      "Valid Transition",
			current:   models.BookingStatusRequest,
			requested: "confirmed",
			mockSetup: func(m bookingUCMocks) {
				m.bookingRepo.EXPECT().
					UpdateBookingStatus(gomock.Any(), int64(1), models.BookingStatusConfirmed).
					Return(nil)
				m.bookingGW.EXPECT().
					PublishStatusChanged(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.BookingStatusConfirmed, booking.BookingStatus)
			},
		},
		{
			name:      "Legacy Alias Drives Same Transition",
			current:   models.BookingStatusOnGoing,
			requested: "completed",
			mockSetup: func(m bookingUCMocks) {
				m.bookingRepo.EXPECT().
					UpdateBookingStatus(gomock.Any(), int64(1), models.BookingStatusDoneService).
					Return(nil)
				m.bookingGW.EXPECT().
					PublishStatusChanged(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.BookingStatusDoneService, booking.BookingStatus)
			},
		},
		{
			name:      "Legacy Stored Status Transitions From Its Canonical State",
			current:   models.BookingStatus("in_progress"),
			requested: "done_service",
			mockSetup: func(m bookingUCMocks) {
				m.bookingRepo.EXPECT().
					UpdateBookingStatus(gomock.Any(), int64(1), models.BookingStatusDoneService).
					Return(nil)
				m.bookingGW.EXPECT().
					PublishStatusChanged(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.BookingStatusDoneService, booking.BookingStatus)
			},
		},
		{
			name:      "Alias Of Legacy Stored Status Is A NoOp",
			current:   models.BookingStatus("in_progress"),
			requested: "on_going",
			mockSetup: func(m bookingUCMocks) {},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.BookingStatus("in_progress"), booking.BookingStatus)
			},
		},
		{
			name:      "Same Status Is A NoOp",
			current:   models.BookingStatusConfirmed,
			requested: "confirmed",
			mockSetup: func(m bookingUCMocks) {},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.BookingStatusConfirmed, booking.BookingStatus)
			},
		},
		{
			name:      "Alias Of Current Status Is A NoOp",
			current:   models.BookingStatusRequest,
			requested: "pending",
			mockSetup: func(m bookingUCMocks) {},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.BookingStatusRequest, booking.BookingStatus)
			},
		},
		{
			name:      "Disallowed Transition",
			current:   models.BookingStatusDoneService,
			requested: "on_going",
			mockSetup: func(m bookingUCMocks) {},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
				assert.Nil(t, booking)
			},
		},
		{
			name:      "Backwards Transition Rejected",
			current:   models.BookingStatusOnGoing,
			requested: "confirmed",
			mockSetup: func(m bookingUCMocks) {},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := setupBookingUCTest(t)
			m.bookingRepo.EXPECT().
				GetBookingByID(gomock.Any(), int64(1)).
				Return(testBooking(1, 7, tc.current), nil)
			tc.mockSetup(m)

			booking, err := uc.UpdateBookingStatus(context.Background(), companyScope(t, 7), 1, tc.requested)
			tc.assertFunc(t, booking, err)
		})
	}

	t.Run("Unknown Status", func(t *testing.T) {
		uc, _ := setupBookingUCTest(t)

		booking, err := uc.UpdateBookingStatus(context.Background(), companyScope(t, 7), 1, "archived")
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
		assert.Nil(t, booking)
	})

	t.Run("Booking Not Found", func(t *testing.T) {
		uc, m := setupBookingUCTest(t)
		m.bookingRepo.EXPECT().
			GetBookingByID(gomock.Any(), int64(99)).
			Return(nil, apperrors.ErrNotFound)

		_, err := uc.UpdateBookingStatus(context.Background(), companyScope(t, 7), 99, "confirmed")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Publish Failure Does Not Fail The Update", func(t *testing.T) {
		uc, m := setupBookingUCTest(t)
		m.bookingRepo.EXPECT().
			GetBookingByID(gomock.Any(), int64(1)).
			Return(testBooking(1, 7, models.BookingStatusRequest), nil)
		m.bookingRepo.EXPECT().
			UpdateBookingStatus(gomock.Any(), int64(1), models.BookingStatusCancelled).
			Return(nil)
		m.bookingGW.EXPECT().
			PublishStatusChanged(gomock.Any(), gomock.Any()).
			Return(errors.New("nats unavailable"))

		booking, err := uc.UpdateBookingStatus(context.Background(), companyScope(t, 7), 1, "cancelled")
		assert.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, booking.BookingStatus)
	})
}
