package list_services

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

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
