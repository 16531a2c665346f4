// Package directory - сервис для чтения справочника барберов и услуг.
// Используется витриной записи: клиент выбирает барбера и услугу
// из этих списков перед созданием записи.
package directory

import (
	"context"
	"fmt"

	"github.com/m04kA/BRB-SchedulingService/internal/service/directory/models"
)

type Service struct {
	repo   DirectoryRepository
	logger Logger
}

func NewService(repo DirectoryRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListBarbers возвращает активных барберов, отсортированных по имени
func (s *Service) ListBarbers(ctx context.Context) (*models.BarberListResponse, error) {
	barbers, err := s.repo.ListActiveBarbers(ctx)
	if err != nil {
		s.logger.Error("ListBarbers - failed to list barbers: %v", err)
		return nil, fmt.Errorf("%w: ListBarbers - list active barbers: %v", ErrInternal, err)
	}

	return models.FromDomainBarbers(barbers), nil
}

// ListServices возвращает активные услуги, отсортированные по длительности
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.repo.ListActiveServices(ctx)
	if err != nil {
		s.logger.Error("ListServices - failed to list services: %v", err)
		return nil, fmt.Errorf("%w: ListServices - list active services: %v", ErrInternal, err)
	}

	return models.FromDomainServices(services), nil
}
