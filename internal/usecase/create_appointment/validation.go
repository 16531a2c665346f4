package create_appointment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Возвращает нормализованное имя клиента (с обрезанными пробелами).
func validateRequest(req *Request) (string, error) {
	if req.BarberID == uuid.Nil {
		return "", fmt.Errorf("%w: barberId is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return "", fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	clientName := strings.TrimSpace(req.ClientName)
	if clientName == "" {
		return "", ErrInvalidClient
	}
	if len(clientName) > domain.MaxClientNameLength {
		return "", fmt.Errorf("%w: client name is too long", ErrInvalidInput)
	}

	if req.ClientPhone != nil && len(*req.ClientPhone) > domain.MaxClientPhoneLength {
		return "", fmt.Errorf("%w: client phone is too long", ErrInvalidInput)
	}

	if req.Date == "" {
		return "", fmt.Errorf("%w: date is required", ErrInvalidTimeInput)
	}

	if req.StartTime == "" {
		return "", fmt.Errorf("%w: startTime is required", ErrInvalidTimeInput)
	}

	return clientName, nil
}
