package usecase

import (
	"time"

	"safarsaga-backend/internal/data/entity"

	"github.com/google/uuid"
)

// FindConflictingBooking returns the first active booking that occupies the
// same slot: same user, same destination or event, same travel date. Cancelled
// bookings never conflict, and the same user may book the same destination on
// a different date. Both reference keys are checked, so an event-based booking
// cannot slip past a destination-based one for the same slot.
func FindConflictingBooking(userID uuid.UUID, destinationID, eventID *uuid.UUID, travelDate time.Time, existing []*entity.Booking) *entity.Booking {
	for _, booking := range existing {
		if !booking.IsActive() {
			continue
		}
		if booking.UserID != userID {
			continue
		}
		if !sameDay(booking.TravelDate, travelDate) {
			continue
		}
		if matchRef(booking.DestinationID, destinationID) || matchRef(booking.EventID, eventID) {
			return booking
		}
	}
	return nil
}

func matchRef(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
