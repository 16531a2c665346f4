package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		current AppointmentStatus
		target  AppointmentStatus
		want    bool
	}{
		{name: "scheduled to done", current: StatusScheduled, target: StatusDone, want: true},
		{name: "scheduled to cancelled", current: StatusScheduled, target: StatusCancelled, want: true},
		{name: "scheduled to scheduled", current: StatusScheduled, target: StatusScheduled, want: false},
		{name: "done to cancelled", current: StatusDone, target: StatusCancelled, want: false},
		{name: "done to done", current: StatusDone, target: StatusDone, want: false},
		{name: "cancelled to done", current: StatusCancelled, target: StatusDone, want: false},
		{name: "cancelled to scheduled", current: StatusCancelled, target: StatusScheduled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.current}
			assert.Equal(t, tt.want, a.CanTransitionTo(tt.target))
		})
	}
}

func TestAppointment_Overlaps(t *testing.T) {
	base := time.Date(2025, 10, 15, 13, 0, 0, 0, time.UTC) // 10:00 local
	appt := &Appointment{
		StartsAt: base,
		EndsAt:   base.Add(30 * time.Minute),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "identical interval", start: base, end: base.Add(30 * time.Minute), want: true},
		{name: "overlap from middle", start: base.Add(15 * time.Minute), end: base.Add(45 * time.Minute), want: true},
		{name: "contains", start: base.Add(-15 * time.Minute), end: base.Add(45 * time.Minute), want: true},
		{name: "contained", start: base.Add(5 * time.Minute), end: base.Add(10 * time.Minute), want: true},
		{name: "back to back after", start: base.Add(30 * time.Minute), end: base.Add(60 * time.Minute), want: false},
		{name: "back to back before", start: base.Add(-30 * time.Minute), end: base, want: false},
		{name: "one minute into tail", start: base.Add(29 * time.Minute), end: base.Add(59 * time.Minute), want: true},
		{name: "disjoint", start: base.Add(2 * time.Hour), end: base.Add(3 * time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appt.Overlaps(tt.start, tt.end))
		})
	}
}

func TestAppointment_IsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusScheduled}).IsActive())
	assert.True(t, (&Appointment{Status: StatusDone}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
}

func TestParseAppointmentStatus(t *testing.T) {
	got, ok := ParseAppointmentStatus("done")
	assert.True(t, ok)
	assert.Equal(t, StatusDone, got)

	_, ok = ParseAppointmentStatus("no_show")
	assert.False(t, ok)
}
