package wire

import (
	"safarsaga-backend/internal/adaptor"
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/logout", authHandler.Logout)
		r.Post("/api/user/change-password", authHandler.ChangePassword)
	})
}
