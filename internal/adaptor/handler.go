package adaptor

import (
	"net/http"

	"safarsaga-backend/internal/usecase"
	"safarsaga-backend/pkg/apperr"
	"safarsaga-backend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Catalog *CatalogHandler
	Booking *BookingHandler
	Gallery *GalleryHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Booking: NewBookingHandler(service.Booking, log),
		Gallery: NewGalleryHandler(service.Gallery, log),
	}
}

// handleServiceError maps service errors onto HTTP responses by their kind.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case apperr.KindDuplicate:
		log.Warn(operation+" failed - duplicate", zap.Error(err))
		errors := map[string]string{}
		if conflictID := apperr.ConflictIDOf(err); conflictID != "" {
			errors["conflicting_booking_id"] = conflictID
		}
		utils.ResponseConflict(w, err.Error(), errors)

	case apperr.KindCapacity:
		log.Warn(operation+" failed - capacity", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), nil)

	case apperr.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case apperr.KindTerminalState:
		log.Warn(operation+" failed - terminal state", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), nil)

	case apperr.KindAuthorization:
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case apperr.KindDependency:
		log.Error("Failed to "+operation+" - upstream dependency", zap.Error(err))
		utils.ResponseBadGateway(w, "A dependent service is unavailable")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
