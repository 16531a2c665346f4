package advance_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	Advance(ctx context.Context, id uuid.UUID, req *models.AdvanceRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
