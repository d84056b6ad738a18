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

type GalleryHandler struct {
	service usecase.GalleryService
	log     *zap.Logger
}

func NewGalleryHandler(service usecase.GalleryService, log *zap.Logger) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		log:     log.With(zap.String("handler", "gallery")),
	}
}

// UploadImage handles POST /api/gallery (protected)
func (h *GalleryHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	image, err := h.service.UploadImage(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "upload image")
		return
	}

	utils.ResponseCreated(w, "Image uploaded", image)
}

// ListByDestination handles GET /api/destinations/{id}/gallery (public)
func (h *GalleryHandler) ListByDestination(w http.ResponseWriter, r *http.Request) {
	destinationID := chi.URLParam(r, "id")
	if destinationID == "" {
		utils.ResponseBadRequest(w, "Destination ID is required", nil)
		return
	}

	images, err := h.service.ListByDestination(r.Context(), destinationID, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list gallery images")
		return
	}

	utils.ResponseSuccess(w, "success", images)
}

// DeleteImage handles DELETE /api/gallery/{id} (protected)
func (h *GalleryHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	imageID := chi.URLParam(r, "id")
	if imageID == "" {
		utils.ResponseBadRequest(w, "Image ID is required", nil)
		return
	}

	if err := h.service.DeleteImage(r.Context(), imageID, userID.String(), isAdminRequest(r)); err != nil {
		handleServiceError(w, h.log, err, "delete image")
		return
	}

	utils.ResponseNoContent(w)
}
