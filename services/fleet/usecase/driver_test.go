package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
	"github.com/fleetdesk/fleetdesk/services/fleet/mocks"
)

func setupFleetUCTest(t *testing.T) (*FleetUC, *mocks.MockFleetRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	uc := NewFleetUC(mockRepo, &models.Config{})
	return uc, mockRepo
}

func companyScope(t *testing.T, companyID int64) querybuilder.Filter {
	f, err := querybuilder.NewCompanyFilter(companyID)
	require.NoError(t, err)
	return f
}

func TestGetDriver(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, mockRepo := setupFleetUCTest(t)
		mockRepo.EXPECT().
			GetDriverByID(gomock.Any(), int64(1)).
			Return(&models.Driver{ID: 1, CompanyID: 7, Status: models.DriverStatusActive}, nil)

		driver, err := uc.GetDriver(context.Background(), companyScope(t, 7), 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), driver.ID)
	})

	t.Run("Other Company Driver Reads As Not Found", func(t *testing.T) {
		uc, mockRepo := setupFleetUCTest(t)
		mockRepo.EXPECT().
			GetDriverByID(gomock.Any(), int64(1)).
			Return(&models.Driver{ID: 1, CompanyID: 8}, nil)

		driver, err := uc.GetDriver(context.Background(), companyScope(t, 7), 1)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, driver)
	})
}

func TestRegisterDriver(t *testing.T) {
	t.Run("Company Caller Forces Own Company", func(t *testing.T) {
		uc, mockRepo := setupFleetUCTest(t)
		mockRepo.EXPECT().
			CreateDriver(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *models.Driver) error {
				assert.Equal(t, int64(7), d.CompanyID)
				assert.Equal(t, models.DriverStatusPending, d.Status)
				assert.Equal(t, models.DriverTypeRegular, d.Type)
				d.ID = 11
				return nil
			})

		driver := &models.Driver{CompanyID: 99, FirstName: "Juan", LastName: "Cruz"}
		err := uc.RegisterDriver(context.Background(), companyScope(t, 7), driver)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), driver.ID)
	})

	t.Run("Admin Must Name A Company", func(t *testing.T) {
		uc, _ := setupFleetUCTest(t)

		err := uc.RegisterDriver(context.Background(), querybuilder.NewAdminFilter(), &models.Driver{})
		assert.ErrorIs(t, err, querybuilder.ErrMissingCompanyScope)
	})

	t.Run("Unknown Status Rejected", func(t *testing.T) {
		uc, _ := setupFleetUCTest(t)

		driver := &models.Driver{Status: "retired"}
		err := uc.RegisterDriver(context.Background(), companyScope(t, 7), driver)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})
}

func TestUpdateDriverStatusUC(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, mockRepo := setupFleetUCTest(t)
		mockRepo.EXPECT().
			GetDriverByID(gomock.Any(), int64(1)).
			Return(&models.Driver{ID: 1, CompanyID: 7, Status: models.DriverStatusPending}, nil)
		mockRepo.EXPECT().
			UpdateDriverStatus(gomock.Any(), int64(1), models.DriverStatusActive).
			Return(nil)

		driver, err := uc.UpdateDriverStatus(context.Background(), companyScope(t, 7), 1, "active")
		assert.NoError(t, err)
		assert.Equal(t, models.DriverStatusActive, driver.Status)
	})

	t.Run("Same Status Skips The Write", func(t *testing.T) {
		uc, mockRepo := setupFleetUCTest(t)
		mockRepo.EXPECT().
			GetDriverByID(gomock.Any(), int64(1)).
			Return(&models.Driver{ID: 1, CompanyID: 7, Status: models.DriverStatusActive}, nil)

		driver, err := uc.UpdateDriverStatus(context.Background(), companyScope(t, 7), 1, "active")
		assert.NoError(t, err)
		assert.Equal(t, models.DriverStatusActive, driver.Status)
	})

	t.Run("Unknown Status Rejected", func(t *testing.T) {
		uc, _ := setupFleetUCTest(t)

		_, err := uc.UpdateDriverStatus(context.Background(), companyScope(t, 7), 1, "suspended")
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})
}
