package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	FindOverlapping(ctx context.Context, barberID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]*domain.Appointment, error)
}

// DirectoryRepository интерфейс справочника барберов и услуг
type DirectoryRepository interface {
	GetBarberByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
	IncAppointmentCreated(barberID string)
	IncSchedulingConflict(stage string)
}
