package routers

import (
	"agenda-sync-service/internal/app/config"
	"agenda-sync-service/internal/app/delivery/http/controllers"
	"agenda-sync-service/internal/app/delivery/http/middlewares"
	"agenda-sync-service/internal/app/models"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/dto/requests"
	"agenda-sync-service/internal/pkg/dto/responses"
	"agenda-sync-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSheetSyncUsecase struct {
	mock.Mock
}

func (m *MockSheetSyncUsecase) SyncAppointment(ctx context.Context, record models.AppointmentRecord) (*responses.SheetSync, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SheetSync), args.Error(1)
}

func (m *MockSheetSyncUsecase) DebugGrid(ctx context.Context, request *requests.DebugGrid) (*responses.DebugGrid, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DebugGrid), args.Error(1)
}

const testAPIKey = "test-agenda-api-key"

func setupTestRouter(usecase *MockSheetSyncUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix: "api",
			Version:        "v1",
			APIKey:         testAPIKey,
			AllowedOrigins: []string{"*"},
			MaxRequests:    1000,
		},
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewSheetSyncController(logger, usecase),
	)
	return router
}

func syncBody(t *testing.T, payload map[string]string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func validPayload() map[string]string {
	return map[string]string{
		"date":         "2025-11-25",
		"time":         "13:00",
		"patient_name": "Maria Silva",
		"procedure":    "Botox",
		"amount_paid":  "250,00",
		"status":       "confirmada",
	}
}

func TestSheetSyncRouter_SyncAppointment(t *testing.T) {
	usecase := new(MockSheetSyncUsecase)
	router := setupTestRouter(usecase)

	expectedRecord := models.AppointmentRecord{
		Date:        time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC),
		Time:        "13:00",
		PatientName: "Maria Silva",
		Procedure:   "Botox",
		AmountPaid:  "250,00",
		Status:      models.AppointmentStatusConfirmed,
	}
	usecase.On("SyncAppointment", mock.Anything, expectedRecord).
		Return(&responses.SheetSync{Success: true, Range: "'Novembro/2025'!G9:J9", Sheet: "Novembro/2025"}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sheets/appointments/sync", syncBody(t, validPayload()))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"range":"'Novembro/2025'!G9:J9","sheet":"Novembro/2025"}`, rr.Body.String())

	usecase.AssertExpectations(t)
}

func TestSheetSyncRouter_SyncAppointmentErrors(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		usecase := new(MockSheetSyncUsecase)
		router := setupTestRouter(usecase)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sheets/appointments/sync", syncBody(t, validPayload()))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		usecase.AssertNotCalled(t, "SyncAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		usecase := new(MockSheetSyncUsecase)
		router := setupTestRouter(usecase)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sheets/appointments/sync", bytes.NewBufferString("{"))
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Validation", func(t *testing.T) {
		usecase := new(MockSheetSyncUsecase)
		router := setupTestRouter(usecase)

		payload := validPayload()
		payload["time"] = "1pm"
		delete(payload, "patient_name")

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sheets/appointments/sync", syncBody(t, payload))
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrKindValidation, body["kind"])
		usecase.AssertNotCalled(t, "SyncAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Header Not Found", func(t *testing.T) {
		usecase := new(MockSheetSyncUsecase)
		router := setupTestRouter(usecase)

		usecase.On("SyncAppointment", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrHeaderDateNotFound("17/11/2025", []string{"24/11/2025", "01/12/2025"})).
			Once()

		payload := validPayload()
		payload["date"] = "2025-11-18"
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sheets/appointments/sync", syncBody(t, payload))
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var body struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
			Details struct {
				Searched       string   `json:"searched"`
				AvailableDates []string `json:"available_dates"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.NotEmpty(t, body.Error)
		assert.Equal(t, "17/11/2025", body.Details.Searched)
		assert.Equal(t, []string{"24/11/2025", "01/12/2025"}, body.Details.AvailableDates)
	})

	t.Run("Weekend", func(t *testing.T) {
		usecase := new(MockSheetSyncUsecase)
		router := setupTestRouter(usecase)

		usecase.On("SyncAppointment", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrUnsupportedWeekday("2025-11-29", "Saturday")).
			Once()

		payload := validPayload()
		payload["date"] = "2025-11-29"
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sheets/appointments/sync", syncBody(t, payload))
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestSheetSyncRouter_DebugGrid(t *testing.T) {
	usecase := new(MockSheetSyncUsecase)
	router := setupTestRouter(usecase)

	usecase.On("DebugGrid", mock.Anything, &requests.DebugGrid{Sheet: "Novembro/2025"}).
		Return(&responses.DebugGrid{
			Sheet:     "Novembro/2025",
			Range:     "'Novembro/2025'!A1:AZ100",
			Rows:      [][]string{{"", "24/11/2025"}},
			DateCells: []responses.DebugDateCell{{Row: 0, Column: 1, A1: "B1", Value: "24/11/2025"}},
		}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sheets/debug?sheet=Novembro/2025", nil)
	req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Success bool                `json:"success"`
		Data    responses.DebugGrid `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "B1", body.Data.DateCells[0].A1)

	usecase.AssertExpectations(t)
}

func TestSheetSyncRouter_DebugGridRequiresSheetOrDate(t *testing.T) {
	usecase := new(MockSheetSyncUsecase)
	router := setupTestRouter(usecase)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sheets/debug", nil)
	req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	usecase.AssertNotCalled(t, "DebugGrid", mock.Anything, mock.Anything)
}

func TestHealthRoute(t *testing.T) {
	router := setupTestRouter(new(MockSheetSyncUsecase))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
}
