package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/middleware"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
	"github.com/fleetdesk/fleetdesk/services/fleet/mocks"
)

func setupHandlerTest(t *testing.T) (*FleetHandler, *mocks.MockFleetUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockFleetUC(ctrl)
	return NewFleetHandler(mockUC), mockUC
}

func newEchoContext(method, target, body, role string, companyID int64) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextRole, role)
	c.Set(middleware.ContextCompanyID, companyID)
	return c, rec
}

func TestListDriversHandler(t *testing.T) {
	t.Run("Company Caller Gets Scoped Filter", func(t *testing.T) {
		h, mockUC := setupHandlerTest(t)

		mockUC.EXPECT().
			ListDrivers(gomock.Any(), gomock.Any(), 1, 20).
			DoAndReturn(func(_ interface{}, f querybuilder.Filter, _, _ int) ([]models.Driver, int, error) {
				assert.Equal(t, int64(7), f.CompanyID())
				assert.Equal(t, "active", f.Status)
				assert.Equal(t, "cruz", f.Search)
				return []models.Driver{{ID: 1}}, 1, nil
			})

		c, rec := newEchoContext(http.MethodGet, "/drivers?status=active&search=cruz", "", "staff", 7)
		require.NoError(t, h.ListDrivers(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Admin Narrowed To One Company", func(t *testing.T) {
		h, mockUC := setupHandlerTest(t)

		mockUC.EXPECT().
			ListDrivers(gomock.Any(), gomock.Any(), 1, 20).
			DoAndReturn(func(_ interface{}, f querybuilder.Filter, _, _ int) ([]models.Driver, int, error) {
				assert.False(t, f.AdminView())
				assert.Equal(t, int64(3), f.CompanyID())
				return []models.Driver{}, 0, nil
			})

		c, rec := newEchoContext(http.MethodGet, "/drivers?company_id=3", "", middleware.RoleAdmin, 0)
		require.NoError(t, h.ListDrivers(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCreateDriverHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockUC := setupHandlerTest(t)

		mockUC.EXPECT().
			RegisterDriver(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, _ querybuilder.Filter, d *models.Driver) error {
				assert.Equal(t, "Juan", d.FirstName)
				d.ID = 11
				return nil
			})

		c, rec := newEchoContext(http.MethodPost, "/drivers", `{"first_name":"Juan","last_name":"Cruz"}`, "staff", 7)
		require.NoError(t, h.CreateDriver(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Data models.Driver `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(11), resp.Data.ID)
	})

	t.Run("Invalid Payload", func(t *testing.T) {
		h, _ := setupHandlerTest(t)

		c, rec := newEchoContext(http.MethodPost, "/drivers", `{not json`, "staff", 7)
		require.NoError(t, h.CreateDriver(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateDriverStatusHandler(t *testing.T) {
	testCases := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{name: "Success", ucErr: nil, wantStatus: http.StatusOK},
		{name: "Not Found", ucErr: apperrors.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "Invalid Status", ucErr: apperrors.ErrInvalidStatus, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, mockUC := setupHandlerTest(t)

			var driver *models.Driver
			if tc.ucErr == nil {
				driver = &models.Driver{ID: 1, CompanyID: 7, Status: models.DriverStatusActive}
			}
			mockUC.EXPECT().
				UpdateDriverStatus(gomock.Any(), gomock.Any(), int64(1), "active").
				Return(driver, tc.ucErr)

			c, rec := newEchoContext(http.MethodPut, "/drivers/1/status", `{"status":"active"}`, "staff", 7)
			c.SetParamNames("id")
			c.SetParamValues("1")

			require.NoError(t, h.UpdateDriverStatus(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestUpdateVehicleStatusHandler(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		UpdateVehicleStatus(gomock.Any(), gomock.Any(), int64(2), "inactive").
		Return(&models.Vehicle{ID: 2, CompanyID: 7, Status: models.VehicleStatusInactive}, nil)

	c, rec := newEchoContext(http.MethodPut, "/vehicles/2/status", `{"status":"inactive"}`, "staff", 7)
	c.SetParamNames("id")
	c.SetParamValues("2")

	require.NoError(t, h.UpdateVehicleStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
