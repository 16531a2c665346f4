package domain

// Default booking policy values
const (
	DefaultOpenHour  = 9
	DefaultCloseHour = 18
	DefaultTimezone  = "America/Sao_Paulo"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxClientNameLength       = 200
	MaxClientPhoneLength      = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
