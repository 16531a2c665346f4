package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// BarberResponse ответ с данными барбера
type BarberResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceCents      int64     `json:"priceCents"`
}

// BarberListResponse список барберов
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainBarbers конвертирует domain модели в DTO
func FromDomainBarbers(list []*domain.Barber) *BarberListResponse {
	result := make([]BarberResponse, 0, len(list))
	for _, b := range list {
		result = append(result, BarberResponse{
			ID:   b.ID,
			Name: b.Name,
		})
	}
	return &BarberListResponse{Barbers: result}
}

// FromDomainServices конвертирует domain модели в DTO
func FromDomainServices(list []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		result = append(result, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			PriceCents:      s.PriceCents,
		})
	}
	return &ServiceListResponse{Services: result}
}
