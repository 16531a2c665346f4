package domain

import "github.com/google/uuid"

// Barber represents a service provider. Immutable from the scheduling
// engine's perspective; only Active gates whether new bookings may
// reference it.
type Barber struct {
	ID     uuid.UUID
	Name   string
	Active bool
}

// Service represents a bookable service with a fixed duration and price
type Service struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int   // > 0
	PriceCents      int64 // >= 0, integer minor-currency units
	Active          bool
}
