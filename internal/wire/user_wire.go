package wire

import (
	"safarsaga-backend/internal/adaptor"
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/user/profile - View own profile
		r.Get("/api/user/profile", userHandler.GetProfile)

		// PUT /api/user/profile - Update own profile
		r.Put("/api/user/profile", userHandler.UpdateProfile)
	})
}
