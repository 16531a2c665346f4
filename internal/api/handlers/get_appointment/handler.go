package get_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/BRB-SchedulingService/internal/service/appointments"
)

const (
	msgInvalidID           = "некорректный идентификатор записи"
	msgAppointmentNotFound = "запись не найдена"
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

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := uuid.Parse(vars["appointmentId"])
	if err != nil {
		h.logger.Warn("GET /appointments/{appointmentId} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{appointmentId} - Appointment not found: appointment_id=%s",
				appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("GET /appointments/{appointmentId} - Failed to get appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
