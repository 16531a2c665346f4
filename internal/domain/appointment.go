package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusDone      AppointmentStatus = "done"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus валидирует строковый статус
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusDone, StatusCancelled:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

// Appointment represents a booked time slot in a barber's calendar.
// StartsAt and EndsAt are absolute instants (UTC); EndsAt = StartsAt +
// DurationMinutes. Service name, duration and price are snapshotted at
// booking time so later catalog changes never alter existing appointments.
type Appointment struct {
	ID          uuid.UUID
	BarberID    uuid.UUID
	ServiceID   uuid.UUID
	ClientName  string
	ClientPhone *string

	StartsAt        time.Time
	EndsAt          time.Time
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName string
	PriceCents  int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment participates in overlap checks
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsTerminal returns true if the appointment is in a terminal state
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusDone || a.Status == StatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving to target.
// The only legal transitions are scheduled -> done and scheduled -> cancelled;
// terminal states are immutable, including no-op re-application.
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	if a.Status != StatusScheduled {
		return false
	}
	return target == StatusDone || target == StatusCancelled
}

// Overlaps reports whether the appointment's [StartsAt, EndsAt) interval
// intersects [start, end) under half-open semantics: an appointment ending
// at T and one starting at T do not conflict.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartsAt.Before(end) && start.Before(a.EndsAt)
}

// AgendaFilter фильтр для выборки записей барбера за абсолютное окно времени
type AgendaFilter struct {
	BarberID         uuid.UUID
	From             time.Time // Нижняя граница starts_at (включительно)
	To               time.Time // Верхняя граница starts_at (включительно)
	IncludeCancelled bool      // Включать ли отмененные записи
}
