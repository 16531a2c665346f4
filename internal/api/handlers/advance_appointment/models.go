package advance_appointment

import (
	"github.com/m04kA/BRB-SchedulingService/internal/service/appointments/models"
)

// AdvanceStatusRequest HTTP request model
type AdvanceStatusRequest struct {
	Target string `json:"target"` // "done" или "cancelled"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AdvanceStatusRequest) ToServiceRequest() *models.AdvanceRequest {
	return &models.AdvanceRequest{
		Target: r.Target,
	}
}
