package adaptor

import (
	"encoding/json"
	"net/http"

	"safarsaga-backend/internal/dto/request"
	"safarsaga-backend/internal/usecase"
	"safarsaga-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListDestinations handles GET /api/destinations (public)
func (h *CatalogHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.service.ListDestinations(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list destinations")
		return
	}

	utils.ResponseSuccess(w, "success", destinations)
}

// GetDestination handles GET /api/destinations/{id} (public)
func (h *CatalogHandler) GetDestination(w http.ResponseWriter, r *http.Request) {
	destinationID := chi.URLParam(r, "id")
	if destinationID == "" {
		utils.ResponseBadRequest(w, "Destination ID is required", nil)
		return
	}

	destination, err := h.service.GetDestination(r.Context(), destinationID)
	if err != nil {
		handleServiceError(w, h.log, err, "get destination")
		return
	}

	utils.ResponseSuccess(w, "success", destination)
}

// ListEvents handles GET /api/events (public)
func (h *CatalogHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListEvents(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// GetEvent handles GET /api/events/{id} (public)
func (h *CatalogHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	event, err := h.service.GetEvent(r.Context(), eventID)
	if err != nil {
		handleServiceError(w, h.log, err, "get event")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

// ==================== ADMIN METHODS ====================

// CreateDestination handles POST /api/admin/destinations (admin only)
func (h *CatalogHandler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	destination, err := h.service.CreateDestination(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create destination")
		return
	}

	utils.ResponseCreated(w, "Destination created", destination)
}

// UpdateDestination handles PUT /api/admin/destinations/{id} (admin only)
func (h *CatalogHandler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	destinationID := chi.URLParam(r, "id")
	if destinationID == "" {
		utils.ResponseBadRequest(w, "Destination ID is required", nil)
		return
	}

	var req request.UpdateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	destination, err := h.service.UpdateDestination(r.Context(), destinationID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update destination")
		return
	}

	utils.ResponseSuccess(w, "Destination updated", destination)
}

// DeleteDestination handles DELETE /api/admin/destinations/{id} (admin only)
func (h *CatalogHandler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	destinationID := chi.URLParam(r, "id")
	if destinationID == "" {
		utils.ResponseBadRequest(w, "Destination ID is required", nil)
		return
	}

	if err := h.service.DeleteDestination(r.Context(), destinationID); err != nil {
		handleServiceError(w, h.log, err, "delete destination")
		return
	}

	utils.ResponseNoContent(w)
}

// CreateEvent handles POST /api/admin/events (admin only)
func (h *CatalogHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	event, err := h.service.CreateEvent(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create event")
		return
	}

	utils.ResponseCreated(w, "Event created", event)
}

// DeleteEvent handles DELETE /api/admin/events/{id} (admin only)
func (h *CatalogHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	if err := h.service.DeleteEvent(r.Context(), eventID); err != nil {
		handleServiceError(w, h.log, err, "delete event")
		return
	}

	utils.ResponseNoContent(w)
}
