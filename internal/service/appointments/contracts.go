package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	GetByBarberAndRange(ctx context.Context, filter domain.AgendaFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
}

// DirectoryRepository интерфейс справочника барберов
type DirectoryRepository interface {
	GetBarberByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс бизнес-метрик. Реализация nil-safe:
// при выключенных метриках передается nil *metrics.Metrics.
type MetricsRecorder interface {
	IncStatusTransition(target string)
}
