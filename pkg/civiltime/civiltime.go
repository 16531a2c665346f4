// Package civiltime конвертирует гражданское время (дата + время суток +
// именованная таймзона) в абсолютные моменты времени и обратно.
//
// Гражданское время не имеет абсолютного смысла, пока не применены правила
// смещения конкретной зоны. Все абсолютные моменты возвращаются в UTC, чтобы
// их можно было сравнивать и хранить независимо от зоны запроса.
package civiltime

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

const (
	// DateFormat формат гражданской даты
	DateFormat = "2006-01-02"

	// ClockFormat формат времени суток без секунд
	ClockFormat = "15:04"

	// ClockFormatSeconds формат времени суток с секундами
	ClockFormatSeconds = "15:04:05"
)

var (
	// ErrInvalidTimeInput возвращается, когда дата или время не парсятся
	ErrInvalidTimeInput = errors.New("civiltime: invalid date/time input")

	// ErrUnknownTimezone возвращается при неизвестном идентификаторе зоны
	ErrUnknownTimezone = errors.New("civiltime: unknown timezone")

	// ErrOutsideBusinessHours возвращается, когда время начала вне рабочих часов
	ErrOutsideBusinessHours = errors.New("civiltime: start time is outside business hours")
)

// ToAbsolute интерпретирует дату и время суток как wall-clock время в
// указанной зоне и возвращает соответствующий абсолютный момент в UTC.
// Время принимается в формате "HH:MM" или "HH:MM:SS".
func ToAbsolute(date, clock, zone string) (time.Time, error) {
	loc, err := loadLocation(zone)
	if err != nil {
		return time.Time{}, err
	}

	layout := DateFormat + " " + ClockFormat
	if len(clock) == len(ClockFormatSeconds) {
		layout = DateFormat + " " + ClockFormatSeconds
	}

	t, err := time.ParseInLocation(layout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTimeInput, err)
	}

	return t.UTC(), nil
}

// ToCivil обратная операция: переводит абсолютный момент в гражданскую дату
// и время суток в указанной зоне. Используется для отображения.
func ToCivil(instant time.Time, zone string) (date, clock string, err error) {
	loc, err := loadLocation(zone)
	if err != nil {
		return "", "", err
	}

	local := instant.In(loc)
	return local.Format(DateFormat), local.Format(ClockFormat), nil
}

// StartOfDay возвращает абсолютный момент начала гражданской даты в зоне
func StartOfDay(date, zone string) (time.Time, error) {
	return ToAbsolute(date, "00:00:00", zone)
}

// EndOfDay возвращает абсолютный момент 23:59:59 гражданской даты в зоне.
// Верхняя граница окна дня включительная.
func EndOfDay(date, zone string) (time.Time, error) {
	return ToAbsolute(date, "23:59:59", zone)
}

// ValidateBusinessHours проверяет, что время начала попадает в рабочие часы
// [openHour:00, closeHour:00]. Граница проверяется только по началу записи:
// последний бронируемый момент - ровно closeHour:00.
func ValidateBusinessHours(start types.TimeString, openHour, closeHour int) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeInput, err)
	}

	h, m := start.Hour(), start.Minute()

	if h < openHour || h > closeHour {
		return fmt.Errorf("%w: %s not in %02d:00-%02d:00", ErrOutsideBusinessHours, start, openHour, closeHour)
	}
	if h == closeHour && m > 0 {
		return fmt.Errorf("%w: %s is past %02d:00", ErrOutsideBusinessHours, start, closeHour)
	}

	return nil
}

func loadLocation(zone string) (*time.Location, error) {
	if zone == "" {
		return nil, fmt.Errorf("%w: empty zone id", ErrUnknownTimezone)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, zone)
	}
	return loc, nil
}
