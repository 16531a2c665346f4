package list_barbers

import (
	"context"

	"github.com/m04kA/BRB-SchedulingService/internal/service/directory/models"
)

type DirectoryService interface {
	ListBarbers(ctx context.Context) (*models.BarberListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
