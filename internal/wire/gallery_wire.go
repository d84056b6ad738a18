package wire

import (
	"safarsaga-backend/internal/adaptor"
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGallery(
	r chi.Router,
	galleryHandler *adaptor.GalleryHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/destinations/{id}/gallery - Browse destination photos
	r.Get("/api/destinations/{id}/gallery", galleryHandler.ListByDestination)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/gallery - Upload a photo
		r.Post("/api/gallery", galleryHandler.UploadImage)

		// DELETE /api/gallery/{id} - Remove own photo (admins may remove any)
		r.Delete("/api/gallery/{id}", galleryHandler.DeleteImage)
	})
}
