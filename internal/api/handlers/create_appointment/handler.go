package create_appointment

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	createAppointment "github.com/m04kA/BRB-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidID            = "некорректный идентификатор барбера или услуги"
	msgInvalidTimeInput     = "некорректная дата, время или таймзона, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidClient        = "имя клиента обязательно"
	msgBarberNotFound       = "барбер не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgOutsideBusinessHours = "время начала вне рабочих часов"
	msgSlotTaken            = "выбранное время уже занято у этого барбера"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var slotErr *createAppointment.SlotTakenError

		switch {
		case errors.As(err, &slotErr):
			h.logger.Warn("POST /appointments - Slot taken: barber_id=%s, date=%s, time=%s",
				req.BarberID, req.Date, req.StartTime)
			respondSlotTaken(w, slotErr)

		case errors.Is(err, createAppointment.ErrBarberNotFound):
			h.logger.Warn("POST /appointments - Barber not found: barber_id=%s", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidClient):
			h.logger.Warn("POST /appointments - Invalid client name")
			handlers.RespondUnprocessable(w, msgInvalidClient)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: time=%s", req.StartTime)
			handlers.RespondUnprocessable(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrInvalidTimeInput),
			errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: barber_id=%s, error=%v",
				req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, barber_id=%s",
		result.ID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// respondSlotTaken отправляет 409 с интервалом конфликтующей записи,
// чтобы клиент видел, какое именно время занято
func respondSlotTaken(w http.ResponseWriter, slotErr *createAppointment.SlotTakenError) {
	resp := ConflictResponse{
		Code:    http.StatusConflict,
		Message: msgSlotTaken,
	}
	if slotErr.HasConflict {
		resp.Message = fmt.Sprintf("%s: %s - %s",
			msgSlotTaken,
			slotErr.ConflictStart.Format(time.RFC3339),
			slotErr.ConflictEnd.Format(time.RFC3339),
		)
		resp.ConflictStart = slotErr.ConflictStart.Format(time.RFC3339)
		resp.ConflictEnd = slotErr.ConflictEnd.Format(time.RFC3339)
	}
	handlers.RespondJSON(w, http.StatusConflict, resp)
}
