package repository

import (
	"safarsaga-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Destination DestinationRepository
	Event       EventRepository
	Booking     BookingRepository
	Gallery     GalleryRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Destination: NewDestinationRepository(db, log),
		Event:       NewEventRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Gallery:     NewGalleryRepository(db, log),
	}
}
