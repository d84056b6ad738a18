package usecase

import (
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/internal/events"
	"safarsaga-backend/pkg/locker"
	"safarsaga-backend/pkg/mediastore"
	"safarsaga-backend/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Catalog CatalogService
	Booking BookingService
	Gallery GalleryService
}

// Deps carries the optional collaborators. Any of them may be nil when the
// corresponding backend is not configured; the services degrade gracefully.
type Deps struct {
	Locker   *locker.SlotLocker
	Producer *events.Producer
	Cache    *redis.Client
	Media    *mediastore.Client
}

func NewService(repo *repository.Repository, deps Deps, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Catalog: NewCatalogService(repo, deps.Cache, log),
		Booking: NewBookingService(repo, deps.Locker, deps.Producer, config, log),
		Gallery: NewGalleryService(repo, deps.Media, log),
	}
}
