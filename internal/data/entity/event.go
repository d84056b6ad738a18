package entity

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	Base
	DestinationID *uuid.UUID `db:"destination_id"`
	Name          string     `db:"name"`
	Description   *string    `db:"description"`
	StartDate     time.Time  `db:"start_date"`
	PricePerSeat  float64    `db:"price_per_seat"`
	Capacity      int        `db:"capacity"`
	IsActive      bool       `db:"is_active"`
}

// HasStarted reports whether the event start date is on or before the given day.
func (e *Event) HasStarted(now time.Time) bool {
	return !e.StartDate.After(now)
}
