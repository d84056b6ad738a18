package adaptor

import (
	"encoding/json"
	"net/http"

	"safarsaga-backend/internal/data/entity"
	"safarsaga-backend/internal/dto/request"
	"safarsaga-backend/internal/usecase"
	"safarsaga-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// GetUserBookings handles GET /api/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := paginationFromQuery(r)

	bookings, err := h.service.GetUserBookings(r.Context(), userID.String(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id} (protected)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID, userID.String(), isAdminRequest(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetBookingByCode handles GET /api/bookings/code/{code} (protected)
func (h *BookingHandler) GetBookingByCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ResponseBadRequest(w, "Booking code is required", nil)
		return
	}

	booking, err := h.service.GetBookingByCode(r.Context(), code, userID.String(), isAdminRequest(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by code")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles DELETE /api/bookings/{id} (protected)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID, userID.String(), isAdminRequest(r)); err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseNoContent(w)
}

// SubmitPayment handles POST /api/bookings/{id}/payment (protected)
func (h *BookingHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.SubmitPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.SubmitPayment(r.Context(), bookingID, userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit payment")
		return
	}

	utils.ResponseSuccess(w, "Payment submitted for review", booking)
}

// ==================== ADMIN METHODS ====================

// ListBookings handles GET /api/admin/bookings (admin only)
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	bookings, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ConfirmPayment handles PUT /api/admin/bookings/{id}/confirm (admin only)
func (h *BookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.ConfirmPayment(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm payment")
		return
	}

	utils.ResponseSuccess(w, "Payment confirmed", booking)
}

// RejectPayment handles PUT /api/admin/bookings/{id}/reject (admin only)
func (h *BookingHandler) RejectPayment(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.RejectPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.RejectPayment(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "reject payment")
		return
	}

	utils.ResponseSuccess(w, "Payment rejected", booking)
}

func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}

func isAdminRequest(r *http.Request) bool {
	role, ok := utils.GetRoleFromContext(r.Context())
	return ok && role == string(entity.RoleAdmin)
}
