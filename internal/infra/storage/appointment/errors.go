package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrOverlapConstraint возвращается, когда вставка отклонена exclusion
	// constraint appointments_no_overlap (интервал пересекается с существующей
	// неотмененной записью барбера). База - финальный арбитр пересечений.
	ErrOverlapConstraint = errors.New("appointment.repository: overlapping appointment exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
