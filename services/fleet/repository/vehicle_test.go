package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

func vehicleRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "company_id", "plate_number", "status", "ownership",
		"make", "model", "year", "color", "created_at", "updated_at",
	})
	now := time.Now()
	for _, id := range ids {
		rows.AddRow(id, int64(7), "ABC-123", "active", "company",
			"Toyota", "HiAce", 2022, "white", now, now)
	}
	return rows
}

func TestGetVehicleByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := setupFleetRepoTest(t)

		mock.ExpectQuery("^SELECT (.+) FROM vehicles WHERE id").
			WithArgs(int64(1)).
			WillReturnRows(vehicleRows(1))

		vehicle, err := repo.GetVehicleByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "ABC-123", vehicle.PlateNumber)
	})

	t.Run("Vehicle Not Found", func(t *testing.T) {
		repo, mock := setupFleetRepoTest(t)

		mock.ExpectQuery("^SELECT (.+) FROM vehicles WHERE id").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		vehicle, err := repo.GetVehicleByID(context.Background(), 99)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, vehicle)
	})
}

func TestListVehicles(t *testing.T) {
	filter, err := querybuilder.NewCompanyFilter(7)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupFleetRepoTest(t)

		mock.ExpectQuery("^SELECT (.+) FROM vehicles WHERE company_id = \\$1 ORDER BY created_at DESC, id DESC LIMIT \\$2 OFFSET \\$3").
			WithArgs(int64(7), 20, 0).
			WillReturnRows(vehicleRows(1, 2, 3))
		mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM vehicles WHERE company_id = \\$1$").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		vehicles, total, err := repo.ListVehicles(context.Background(), filter, 1, 20)
		assert.NoError(t, err)
		assert.Len(t, vehicles, 3)
		assert.Equal(t, 3, total)
	})

	t.Run("Status Filter Is Bound", func(t *testing.T) {
		repo, mock := setupFleetRepoTest(t)

		filtered := filter
		filtered.Status = "pending"
		mock.ExpectQuery("^SELECT (.+) FROM vehicles WHERE company_id = \\$1 AND status = \\$2").
			WithArgs(int64(7), "pending", 20, 0).
			WillReturnRows(vehicleRows(1))
		mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM vehicles").
			WithArgs(int64(7), "pending").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		vehicles, total, err := repo.ListVehicles(context.Background(), filtered, 1, 20)
		assert.NoError(t, err)
		assert.Len(t, vehicles, 1)
		assert.Equal(t, 1, total)
	})
}

func TestListAssignableVehicles(t *testing.T) {
	repo, mock := setupFleetRepoTest(t)
	filter, err := querybuilder.NewCompanyFilter(7)
	require.NoError(t, err)

	mock.ExpectQuery("^SELECT (.+) FROM vehicles WHERE status IN \\('active', 'pending'\\) AND company_id = \\$1 ORDER BY plate_number").
		WithArgs(int64(7)).
		WillReturnRows(vehicleRows(1, 2))

	vehicles, err := repo.ListAssignableVehicles(context.Background(), filter)
	assert.NoError(t, err)
	assert.Len(t, vehicles, 2)
}

func TestCreateVehicle(t *testing.T) {
	repo, mock := setupFleetRepoTest(t)
	now := time.Now()

	mock.ExpectQuery("^\\s*INSERT INTO vehicles").
		WithArgs(int64(7), "ABC-123", "pending", "company", "Toyota", "HiAce", 2022, "white").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))

	vehicle := &models.Vehicle{
		CompanyID:   7,
		PlateNumber: "ABC-123",
		Status:      models.VehicleStatusPending,
		Ownership:   models.VehicleOwnershipCompany,
		Make:        "Toyota",
		Model:       "HiAce",
		Year:        2022,
		Color:       "white",
	}
	err := repo.CreateVehicle(context.Background(), vehicle)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), vehicle.ID)
}

func TestUpdateVehicleStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := setupFleetRepoTest(t)

		mock.ExpectExec("^UPDATE vehicles SET status").
			WithArgs("active", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateVehicleStatus(context.Background(), 1, models.VehicleStatusActive)
		assert.NoError(t, err)
	})

	t.Run("Vehicle Not Found", func(t *testing.T) {
		repo, mock := setupFleetRepoTest(t)

		mock.ExpectExec("^UPDATE vehicles SET status").
			WithArgs("active", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateVehicleStatus(context.Background(), 99, models.VehicleStatusActive)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Database Error", func(t *testing.T) {
		repo, mock := setupFleetRepoTest(t)

		mock.ExpectExec("^UPDATE vehicles SET status").
			WillReturnError(errors.New("database error"))

		err := repo.UpdateVehicleStatus(context.Background(), 1, models.VehicleStatusActive)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update vehicle status")
	})
}
