package wire

import (
	"net/http"

	"safarsaga-backend/internal/adaptor"
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/internal/usecase"
	"safarsaga-backend/pkg/middleware"
	"safarsaga-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router.
func Wiring(repo *repository.Repository, deps usecase.Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, deps, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wireUser(r, handler.User, repo, logger)
	wireCatalog(r, handler.Catalog, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireGallery(r, handler.Gallery, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
