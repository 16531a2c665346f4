package get_agenda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-SchedulingService/internal/service/appointments"
	"github.com/m04kA/BRB-SchedulingService/internal/service/appointments/models"
)

type fakeService struct {
	resp *models.AgendaResponse
	err  error
	got  *models.GetAgendaRequest
}

func (f *fakeService) GetDayAgenda(_ context.Context, req *models.GetAgendaRequest) (*models.AgendaResponse, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, barberID, query string) *httptest.ResponseRecorder {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/barbers/{barberId}/agenda", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbers/"+barberID+"/agenda"+query, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	barberID := uuid.New()
	svc := &fakeService{resp: &models.AgendaResponse{
		BarberID:     barberID,
		Date:         "2025-10-15",
		Timezone:     "America/Sao_Paulo",
		Appointments: []models.AppointmentResponse{},
	}}

	rec := doRequest(t, svc, barberID.String(), "?date=2025-10-15&timezone=America/Sao_Paulo")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AgendaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.NotNil(t, resp.Appointments)

	require.NotNil(t, svc.got)
	assert.Equal(t, barberID, svc.got.BarberID)
	assert.Equal(t, "2025-10-15", svc.got.Date)
	assert.Equal(t, "America/Sao_Paulo", svc.got.Timezone)
}

func TestHandle_BadBarberID(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "not-a-uuid", "?date=2025-10-15")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "barber not found", err: appointments.ErrBarberNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid date", err: appointments.ErrInvalidTimeInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: appointments.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeService{err: tt.err}, uuid.NewString(), "?date=2025-10-15")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
