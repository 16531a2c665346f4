package list_barbers

import (
	"net/http"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBarbers(r.Context())
	if err != nil {
		h.logger.Error("GET /barbers - Failed to list barbers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
