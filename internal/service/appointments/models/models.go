package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// Request модели

// GetAgendaRequest запрос агенды барбера на гражданскую дату
type GetAgendaRequest struct {
	BarberID uuid.UUID
	Date     string // "YYYY-MM-DD"
	Timezone string // Опционально, иначе зона сервиса
}

// AdvanceRequest запрос перевода записи в терминальный статус
type AdvanceRequest struct {
	Target string // "done" или "cancelled"
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	BarberID    uuid.UUID `json:"barberId"`
	ServiceID   uuid.UUID `json:"serviceId"`
	ClientName  string    `json:"clientName"`
	ClientPhone *string   `json:"clientPhone,omitempty"`

	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`

	// Денормализованные данные
	ServiceName string `json:"serviceName"`
	PriceCents  int64  `json:"priceCents"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AgendaResponse ответ с агендой барбера на день
type AgendaResponse struct {
	BarberID     uuid.UUID             `json:"barberId"`
	Date         string                `json:"date"`
	Timezone     string                `json:"timezone"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		BarberID:        a.BarberID,
		ServiceID:       a.ServiceID,
		ClientName:      a.ClientName,
		ClientPhone:     a.ClientPhone,
		StartsAt:        a.StartsAt,
		EndsAt:          a.EndsAt,
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		ServiceName:     a.ServiceName,
		PriceCents:      a.PriceCents,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(list []*domain.Appointment) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, *FromDomainAppointment(a))
	}
	return result
}
