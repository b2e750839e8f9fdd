package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

func TestGetVehicle(t *testing.T) {
	t.Run("Admin Sees Any Company", func(t *testing.T) {
		uc, mockRepo := setupFleetUCTest(t)
		mockRepo.EXPECT().
			GetVehicleByID(gomock.Any(), int64(1)).
			Return(&models.Vehicle{ID: 1, CompanyID: 8}, nil)

		vehicle, err := uc.GetVehicle(context.Background(), querybuilder.NewAdminFilter(), 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(8), vehicle.CompanyID)
	})

	t.Run("Other Company Vehicle Reads As Not Found", func(t *testing.T) {
		uc, mockRepo := setupFleetUCTest(t)
		mockRepo.EXPECT().
			GetVehicleByID(gomock.Any(), int64(1)).
			Return(&models.Vehicle{ID: 1, CompanyID: 8}, nil)

		vehicle, err := uc.GetVehicle(context.Background(), companyScope(t, 7), 1)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, vehicle)
	})
}

func TestRegisterVehicle(t *testing.T) {
	t.Run("Defaults Applied", func(t *testing.T) {
		uc, mockRepo := setupFleetUCTest(t)
		mockRepo.EXPECT().
			CreateVehicle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *models.Vehicle) error {
				assert.Equal(t, int64(7), v.CompanyID)
				assert.Equal(t, models.VehicleStatusPending, v.Status)
				assert.Equal(t, models.VehicleOwnershipCompany, v.Ownership)
				v.ID = 5
				return nil
			})

		vehicle := &models.Vehicle{PlateNumber: "ABC-123"}
		err := uc.RegisterVehicle(context.Background(), companyScope(t, 7), vehicle)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), vehicle.ID)
	})

	t.Run("Unknown Status Rejected", func(t *testing.T) {
		uc, _ := setupFleetUCTest(t)

		vehicle := &models.Vehicle{Status: "scrapped"}
		err := uc.RegisterVehicle(context.Background(), companyScope(t, 7), vehicle)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})
}

func TestUpdateVehicleStatusUC(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, mockRepo := setupFleetUCTest(t)
		mockRepo.EXPECT().
			GetVehicleByID(gomock.Any(), int64(1)).
			Return(&models.Vehicle{ID: 1, CompanyID: 7, Status: models.VehicleStatusPending}, nil)
		mockRepo.EXPECT().
			UpdateVehicleStatus(gomock.Any(), int64(1), models.VehicleStatusInactive).
			Return(nil)

		vehicle, err := uc.UpdateVehicleStatus(context.Background(), companyScope(t, 7), 1, "inactive")
		assert.NoError(t, err)
		assert.Equal(t, models.VehicleStatusInactive, vehicle.Status)
	})

	t.Run("Unknown Status Rejected", func(t *testing.T) {
		uc, _ := setupFleetUCTest(t)

		_, err := uc.UpdateVehicleStatus(context.Background(), companyScope(t, 7), 1, "broken")
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})
}
