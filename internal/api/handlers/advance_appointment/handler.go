package advance_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/BRB-SchedulingService/internal/service/appointments"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidID           = "некорректный идентификатор записи"
	msgInvalidTarget       = "недопустимый целевой статус, ожидается done или cancelled"
	msgAppointmentNotFound = "запись не найдена"
	msgInvalidTransition   = "запись уже в терминальном статусе"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := uuid.Parse(vars["appointmentId"])
	if err != nil {
		h.logger.Warn("PATCH /appointments/{appointmentId}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req AdvanceStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{appointmentId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Advance(r.Context(), appointmentID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{appointmentId}/status - Appointment not found: appointment_id=%s",
				appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{appointmentId}/status - Invalid transition: appointment_id=%s, target=%s",
				appointmentID, req.Target)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{appointmentId}/status - Invalid target: target=%s", req.Target)
			handlers.RespondUnprocessable(w, msgInvalidTarget)

		default:
			h.logger.Error("PATCH /appointments/{appointmentId}/status - Failed to advance: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{appointmentId}/status - Status advanced: appointment_id=%s, status=%s",
		appointmentID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
