package civiltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

func TestToAbsolute(t *testing.T) {
	// Sao Paulo без DST (с 2019 года) - постоянное смещение -03:00
	got, err := ToAbsolute("2025-10-15", "10:00", "America/Sao_Paulo")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 13, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())

	// Формат с секундами
	got, err = ToAbsolute("2025-10-15", "23:59:59", "America/Sao_Paulo")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 16, 2, 59, 59, 0, time.UTC), got)
}

func TestToAbsolute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		zone    string
		wantErr error
	}{
		{name: "bad date", date: "15-10-2025", clock: "10:00", zone: "UTC", wantErr: ErrInvalidTimeInput},
		{name: "bad clock", date: "2025-10-15", clock: "25:00", zone: "UTC", wantErr: ErrInvalidTimeInput},
		{name: "garbage clock", date: "2025-10-15", clock: "abc", zone: "UTC", wantErr: ErrInvalidTimeInput},
		{name: "unknown zone", date: "2025-10-15", clock: "10:00", zone: "Mars/Olympus", wantErr: ErrUnknownTimezone},
		{name: "empty zone", date: "2025-10-15", clock: "10:00", zone: "", wantErr: ErrUnknownTimezone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToAbsolute(tt.date, tt.clock, tt.zone)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
		zone  string
	}{
		{name: "sao paulo", date: "2025-10-15", clock: "10:00", zone: "America/Sao_Paulo"},
		{name: "utc", date: "2025-01-01", clock: "00:00", zone: "UTC"},
		{name: "new york before spring transition", date: "2025-03-08", clock: "12:00", zone: "America/New_York"},
		{name: "new york after spring transition", date: "2025-03-09", clock: "12:00", zone: "America/New_York"},
		{name: "new york before fall transition", date: "2025-11-01", clock: "12:00", zone: "America/New_York"},
		{name: "new york after fall transition", date: "2025-11-02", clock: "12:00", zone: "America/New_York"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, err := ToAbsolute(tt.date, tt.clock, tt.zone)
			require.NoError(t, err)

			date, clock, err := ToCivil(instant, tt.zone)
			require.NoError(t, err)
			assert.Equal(t, tt.date, date)
			assert.Equal(t, tt.clock, clock)
		})
	}
}

func TestRoundTrip_OffsetChangesAcrossDST(t *testing.T) {
	// Один и тот же wall-clock до и после перехода дает разные UTC-моменты
	before, err := ToAbsolute("2025-03-08", "10:00", "America/New_York") // EST, -05
	require.NoError(t, err)
	after, err := ToAbsolute("2025-03-09", "10:00", "America/New_York") // EDT, -04
	require.NoError(t, err)

	assert.Equal(t, 23*time.Hour, after.Sub(before))
}

func TestDayWindow(t *testing.T) {
	from, err := StartOfDay("2025-10-15", "America/Sao_Paulo")
	require.NoError(t, err)
	to, err := EndOfDay("2025-10-15", "America/Sao_Paulo")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 15, 3, 0, 0, 0, time.UTC), from)
	assert.Equal(t, 24*time.Hour-time.Second, to.Sub(from))
}

func TestValidateBusinessHours(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		wantErr bool
	}{
		{name: "at open", start: "09:00"},
		{name: "mid day", start: "14:30"},
		{name: "one minute before close", start: "17:59"},
		{name: "exactly at close", start: "18:00"},
		{name: "one minute past close", start: "18:01", wantErr: true},
		{name: "hour past close", start: "19:00", wantErr: true},
		{name: "before open", start: "08:59", wantErr: true},
		{name: "midnight", start: "00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBusinessHours(types.TimeString(tt.start), 9, 18)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOutsideBusinessHours)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateBusinessHours_InvalidInput(t *testing.T) {
	err := ValidateBusinessHours(types.TimeString("no"), 9, 18)
	assert.ErrorIs(t, err, ErrInvalidTimeInput)
}
