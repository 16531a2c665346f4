package get_agenda

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/BRB-SchedulingService/internal/service/appointments"
	"github.com/m04kA/BRB-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidBarberID  = "некорректный идентификатор барбера"
	msgInvalidDateInput = "некорректная дата или таймзона, ожидается date=YYYY-MM-DD"
	msgBarberNotFound   = "барбер не найден"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/agenda?date=YYYY-MM-DD&timezone=Area/City
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := uuid.Parse(vars["barberId"])
	if err != nil {
		h.logger.Warn("GET /barbers/{barberId}/agenda - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	req := &models.GetAgendaRequest{
		BarberID: barberID,
		Date:     r.URL.Query().Get("date"),
		Timezone: r.URL.Query().Get("timezone"),
	}

	agenda, err := h.service.GetDayAgenda(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{barberId}/agenda - Barber not found: barber_id=%s", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, appointments.ErrInvalidTimeInput),
			errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{barberId}/agenda - Invalid input: date=%s, timezone=%s, error=%v",
				req.Date, req.Timezone, err)
			handlers.RespondBadRequest(w, msgInvalidDateInput)

		default:
			h.logger.Error("GET /barbers/{barberId}/agenda - Failed to get agenda: barber_id=%s, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{barberId}/agenda - Agenda retrieved: barber_id=%s, date=%s, appointments=%d",
		barberID, agenda.Date, len(agenda.Appointments))
	handlers.RespondJSON(w, http.StatusOK, agenda)
}
