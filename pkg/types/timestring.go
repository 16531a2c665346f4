package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString время суток в формате "HH:MM" (wall-clock, без даты и зоны)
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS" в TimeString.
// Секунды отбрасываются.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(normalize(s))
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// normalize отбрасывает секунды ("10:00:00" -> "10:00")
func normalize(s string) string {
	parts := strings.Split(s, ":")
	if len(parts) == 3 {
		return parts[0] + ":" + parts[1]
	}
	return s
}

// Validate проверяет формат и диапазон значений
func (t TimeString) Validate() error {
	h, m, err := t.parse()
	if err != nil {
		return err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает часы (0-23). Для невалидного значения возвращает 0.
func (t TimeString) Hour() int {
	h, _, _ := t.parse()
	return h
}

// Minute возвращает минуты (0-59). Для невалидного значения возвращает 0.
func (t TimeString) Minute() int {
	_, m, _ := t.parse()
	return m
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперед.
// Переход через полночь не поддерживается - возвращается ошибка.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	h, m, err := t.parse()
	if err != nil {
		return "", err
	}

	total := h*60 + m + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(t), minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.totalMinutes() < other.totalMinutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.totalMinutes() > other.totalMinutes()
}

func (t TimeString) totalMinutes() int {
	h, m, _ := t.parse()
	return h*60 + m
}

func (t TimeString) parse() (hour, minute int, err error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	return hour, minute, nil
}
