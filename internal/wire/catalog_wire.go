package wire

import (
	"safarsaga-backend/internal/adaptor"
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/destinations - Browse destinations
	r.Get("/api/destinations", catalogHandler.ListDestinations)

	// GET /api/destinations/{id} - View destination details
	r.Get("/api/destinations/{id}", catalogHandler.GetDestination)

	// GET /api/events - Browse upcoming events
	r.Get("/api/events", catalogHandler.ListEvents)

	// GET /api/events/{id} - View event details
	r.Get("/api/events/{id}", catalogHandler.GetEvent)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/destinations", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", catalogHandler.CreateDestination)
		r.Put("/{id}", catalogHandler.UpdateDestination)
		r.Delete("/{id}", catalogHandler.DeleteDestination)
	})

	r.Route("/api/admin/events", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", catalogHandler.CreateEvent)
		r.Delete("/{id}", catalogHandler.DeleteEvent)
	})
}
