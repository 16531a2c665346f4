package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("appointments.service: barber not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса.
	// Разрешены только scheduled -> done и scheduled -> cancelled;
	// терминальные статусы неизменяемы.
	ErrInvalidTransition = errors.New("appointments.service: invalid status transition")

	// ErrInvalidTimeInput возвращается при некорректной дате или таймзоне
	ErrInvalidTimeInput = errors.New("appointments.service: invalid date/time input")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
