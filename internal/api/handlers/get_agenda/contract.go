package get_agenda

import (
	"context"

	"github.com/m04kA/BRB-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetDayAgenda(ctx context.Context, req *models.GetAgendaRequest) (*models.AgendaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
