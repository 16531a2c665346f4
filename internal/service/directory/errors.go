package directory

import "errors"

var (
	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("service.directory: internal error")
)
