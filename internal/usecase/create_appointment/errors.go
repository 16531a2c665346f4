package create_appointment

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("create_appointment: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidClient возвращается при пустом имени клиента
	ErrInvalidClient = errors.New("create_appointment: client name is required")

	// ErrInvalidTimeInput возвращается, когда дата, время или зона не распознаны
	ErrInvalidTimeInput = errors.New("create_appointment: invalid date/time input")

	// ErrOutsideBusinessHours возвращается, когда время начала вне рабочих часов
	ErrOutsideBusinessHours = errors.New("create_appointment: start time is outside business hours")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с существующей
	// записью барбера. Конкретный конфликт доступен через SlotTakenError.
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// SlotTakenError ошибка занятого слота с интервалом конфликтующей записи.
// errors.Is(err, ErrSlotNotAvailable) возвращает true.
// HasConflict false, когда конфликт обнаружен constraint'ом базы, но
// конфликтующую запись восстановить не удалось.
type SlotTakenError struct {
	ConflictStart time.Time
	ConflictEnd   time.Time
	HasConflict   bool
}

// Error возвращает описание ошибки
func (e *SlotTakenError) Error() string {
	if !e.HasConflict {
		return ErrSlotNotAvailable.Error()
	}
	return fmt.Sprintf("%s: conflicts with %s - %s",
		ErrSlotNotAvailable.Error(),
		e.ConflictStart.Format(time.RFC3339),
		e.ConflictEnd.Format(time.RFC3339),
	)
}

// Is связывает SlotTakenError с сентинелом ErrSlotNotAvailable
func (e *SlotTakenError) Is(target error) bool {
	return target == ErrSlotNotAvailable
}
