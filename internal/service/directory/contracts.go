package directory

import (
	"context"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// DirectoryRepository - интерфейс репозитория справочника
type DirectoryRepository interface {
	ListActiveBarbers(ctx context.Context) ([]*domain.Barber, error)
	ListActiveServices(ctx context.Context) ([]*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
