package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"safarsaga-backend/internal/dto/request"
	"safarsaga-backend/internal/usecase"
	"safarsaga-backend/pkg/apperr"
	"safarsaga-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful", response)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// Credential failures must not leak which part was wrong.
		if apperr.KindOf(err) == apperr.KindAuthorization {
			h.log.Warn("Login failed", zap.Error(err))
			utils.ResponseUnauthorized(w, "Invalid username or password")
			return
		}
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", response)
}

// Logout handles POST /api/logout (protected)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		utils.ResponseBadRequest(w, "No token provided", nil)
		return
	}

	// Format: "Bearer <token-uuid>"
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		utils.ResponseBadRequest(w, "Invalid token format", nil)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// ChangePassword handles POST /api/user/change-password (protected)
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID.String(), &req); err != nil {
		handleServiceError(w, h.log, err, "change password")
		return
	}

	utils.ResponseSuccess(w, "Password changed, please log in again", nil)
}
