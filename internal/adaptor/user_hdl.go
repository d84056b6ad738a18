package adaptor

import (
	"encoding/json"
	"net/http"

	"safarsaga-backend/internal/usecase"
	"safarsaga-backend/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/user/profile (protected)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// UpdateProfile handles PUT /api/user/profile (protected)
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var input usecase.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(input); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID.String(), &input)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", profile)
}
