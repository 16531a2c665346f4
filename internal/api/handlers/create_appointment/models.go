package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	createAppointment "github.com/m04kA/BRB-SchedulingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BarberID    string  `json:"barberId"`
	ServiceID   string  `json:"serviceId"`
	ClientName  string  `json:"clientName"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	Date        string  `json:"date"`      // "2025-10-15"
	StartTime   string  `json:"startTime"` // "10:00"
	Timezone    string  `json:"timezone,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	BarberID        string  `json:"barberId"`
	ServiceID       string  `json:"serviceId"`
	ClientName      string  `json:"clientName"`
	ClientPhone     *string `json:"clientPhone,omitempty"`
	StartsAt        string  `json:"startsAt"` // RFC 3339, UTC
	EndsAt          string  `json:"endsAt"`   // RFC 3339, UTC
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	PriceCents      int64   `json:"priceCents"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ConflictResponse тело ответа 409 с интервалом конфликтующей записи
type ConflictResponse struct {
	Code          int    `json:"code"`
	Message       string `json:"message"`
	ConflictStart string `json:"conflictStart,omitempty"` // RFC 3339
	ConflictEnd   string `json:"conflictEnd,omitempty"`   // RFC 3339
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	barberID, err := uuid.Parse(r.BarberID)
	if err != nil {
		return nil, fmt.Errorf("invalid barberId: %w", err)
	}

	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid serviceId: %w", err)
	}

	return &createAppointment.Request{
		BarberID:    barberID,
		ServiceID:   serviceID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Date:        r.Date,
		StartTime:   r.StartTime,
		Timezone:    r.Timezone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID.String(),
		BarberID:        resp.BarberID.String(),
		ServiceID:       resp.ServiceID.String(),
		ClientName:      resp.ClientName,
		ClientPhone:     resp.ClientPhone,
		StartsAt:        resp.StartsAt.Format(time.RFC3339),
		EndsAt:          resp.EndsAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		PriceCents:      resp.PriceCents,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
