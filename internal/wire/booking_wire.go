package wire

import (
	"safarsaga-backend/internal/adaptor"
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - Create new booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - View own booking history
		r.Get("/api/bookings", bookingHandler.GetUserBookings)

		// GET /api/bookings/code/{code} - Look up a booking by its code
		r.Get("/api/bookings/code/{code}", bookingHandler.GetBookingByCode)

		// GET /api/bookings/{id} - View a single booking (owner or admin)
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)

		// DELETE /api/bookings/{id} - Cancel a booking (owner or admin)
		r.Delete("/api/bookings/{id}", bookingHandler.CancelBooking)

		// POST /api/bookings/{id}/payment - Submit payment proof for review
		r.Post("/api/bookings/{id}/payment", bookingHandler.SubmitPayment)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/bookings - List all bookings
		r.Get("/", bookingHandler.ListBookings)

		// PUT /api/admin/bookings/{id}/confirm - Approve a reviewed payment
		r.Put("/{id}/confirm", bookingHandler.ConfirmPayment)

		// PUT /api/admin/bookings/{id}/reject - Reject a reviewed payment
		r.Put("/{id}/reject", bookingHandler.RejectPayment)
	})
}
