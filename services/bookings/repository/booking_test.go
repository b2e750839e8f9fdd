package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

func setupBookingRepoTest(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewBookingRepository(&models.Config{}, sqlxDB)
	return repo, mock
}

func bookingRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "voucher", "company_id", "booking_status", "payment_status",
		"total_amount", "pickup_datetime", "pickup_address", "destination_address",
		"passenger_name", "contact_number", "driver_id", "vehicle_id", "created_at", "updated_at",
	})
	now := time.Now()
	for _, id := range ids {
		rows.AddRow(id, "BK-0001", int64(7), "request", "pending",
			1500.0, now, "Origin St", "Destination Ave",
			"Juan Cruz", "+63110001", nil, nil, now, now)
	}
	return rows
}

func TestGetBookingByID(t *testing.T) {
	testCases := []struct {
		name       string
		bookingID  int64
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, booking *models.Booking, err error)
	}{
		{
			name:      "Success",
			bookingID: 1,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id").
					WithArgs(int64(1)).
					WillReturnRows(bookingRows(1))
			},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, booking)
				assert.Equal(t, int64(1), booking.ID)
				assert.Equal(t, models.BookingStatusRequest, booking.BookingStatus)
			},
		},
		{
			name:      "Booking Not Found",
			bookingID: 99,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id").
					WithArgs(int64(99)).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.ErrorIs(t, err, apperrors.ErrNotFound)
				assert.Nil(t, booking)
			},
		},
		{
			name:      "Database Error",
			bookingID: 1,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id").
					WithArgs(int64(1)).
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.Error(t, err)
				assert.Nil(t, booking)
				assert.Contains(t, err.Error(), "failed to get booking")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupBookingRepoTest(t)
			tc.mockSetup(mock)

			booking, err := repo.GetBookingByID(context.Background(), tc.bookingID)
			tc.assertFunc(t, booking, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListBookings(t *testing.T) {
	filter, err := querybuilder.NewCompanyFilter(7)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupBookingRepoTest(t)

		mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE company_id = \\$1 ORDER BY created_at DESC, id DESC LIMIT \\$2 OFFSET \\$3").
			WithArgs(int64(7), 20, 0).
			WillReturnRows(bookingRows(1, 2))
		mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM bookings WHERE company_id = \\$1$").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		bookings, total, err := repo.ListBookings(context.Background(), filter, 1, 20)
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
		assert.Equal(t, 42, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Row Query Error", func(t *testing.T) {
		repo, mock := setupBookingRepoTest(t)

		mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE company_id").
			WillReturnError(errors.New("database error"))

		bookings, total, err := repo.ListBookings(context.Background(), filter, 1, 20)
		assert.Error(t, err)
		assert.Nil(t, bookings)
		assert.Zero(t, total)
		assert.Contains(t, err.Error(), "failed to list bookings")
	})

	t.Run("Count Query Error", func(t *testing.T) {
		repo, mock := setupBookingRepoTest(t)

		mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE company_id").
			WillReturnRows(bookingRows(1))
		mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM bookings").
			WillReturnError(errors.New("database error"))

		_, _, err := repo.ListBookings(context.Background(), filter, 1, 20)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to count bookings")
	})
}

func TestListActiveBookings(t *testing.T) {
	t.Run("Without Exclusion", func(t *testing.T) {
		repo, mock := setupBookingRepoTest(t)

		mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE booking_status IN \\(\\$1, \\$2, \\$3, \\$4, \\$5, \\$6\\)$").
			WithArgs("request", "confirmed", "on_going", "in_progress", "ongoing", "pending").
			WillReturnRows(bookingRows(1, 2, 3))

		bookings, err := repo.ListActiveBookings(context.Background(), 0)
		assert.NoError(t, err)
		assert.Len(t, bookings, 3)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("With Exclusion", func(t *testing.T) {
		repo, mock := setupBookingRepoTest(t)

		mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE booking_status IN \\(\\$1, \\$2, \\$3, \\$4, \\$5, \\$6\\) AND id <> \\$7$").
			WithArgs("request", "confirmed", "on_going", "in_progress", "ongoing", "pending", int64(5)).
			WillReturnRows(bookingRows(1))

		bookings, err := repo.ListActiveBookings(context.Background(), 5)
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE bookings SET booking_status").
					WithArgs("confirmed", int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Booking Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE bookings SET booking_status").
					WithArgs("confirmed", int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, apperrors.ErrNotFound)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE bookings SET booking_status").
					WithArgs("confirmed", int64(1)).
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to update booking status")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupBookingRepoTest(t)
			tc.mockSetup(mock)

			err := repo.UpdateBookingStatus(context.Background(), 1, models.BookingStatusConfirmed)
			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAssignDriver(t *testing.T) {
	driverID := int64(9)

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupBookingRepoTest(t)

		mock.ExpectExec("^\\s*UPDATE bookings SET driver_id").
			WithArgs(&driverID, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AssignDriver(context.Background(), 1, &driverID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Clear Assignment", func(t *testing.T) {
		repo, mock := setupBookingRepoTest(t)

		mock.ExpectExec("^\\s*UPDATE bookings SET driver_id").
			WithArgs(nil, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		var cleared *int64
		err := repo.AssignDriver(context.Background(), 1, cleared)
		assert.NoError(t, err)
	})

	t.Run("Driver Already Assigned", func(t *testing.T) {
		repo, mock := setupBookingRepoTest(t)

		mock.ExpectExec("^\\s*UPDATE bookings SET driver_id").
			WithArgs(&driverID, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("^SELECT EXISTS").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		err := repo.AssignDriver(context.Background(), 1, &driverID)
		assert.ErrorIs(t, err, apperrors.ErrAssignmentConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Booking Not Found", func(t *testing.T) {
		repo, mock := setupBookingRepoTest(t)

		mock.ExpectExec("^\\s*UPDATE bookings SET driver_id").
			WithArgs(&driverID, int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("^SELECT EXISTS").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		err := repo.AssignDriver(context.Background(), 99, &driverID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Guard Covers Legacy Status Spellings", func(t *testing.T) {
		repo, mock := setupBookingRepoTest(t)

		mock.ExpectExec(`b\.booking_status IN \('request', 'confirmed', 'on_going', 'in_progress', 'ongoing', 'pending'\)`).
			WithArgs(&driverID, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AssignDriver(context.Background(), 1, &driverID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAssignVehicle(t *testing.T) {
	vehicleID := int64(4)

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupBookingRepoTest(t)

		mock.ExpectExec("^\\s*UPDATE bookings SET vehicle_id").
			WithArgs(&vehicleID, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AssignVehicle(context.Background(), 1, &vehicleID)
		assert.NoError(t, err)
	})

	t.Run("Vehicle Already Assigned", func(t *testing.T) {
		repo, mock := setupBookingRepoTest(t)

		mock.ExpectExec("^\\s*UPDATE bookings SET vehicle_id").
			WithArgs(&vehicleID, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("^SELECT EXISTS").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		err := repo.AssignVehicle(context.Background(), 1, &vehicleID)
		assert.ErrorIs(t, err, apperrors.ErrAssignmentConflict)
	})
}
