package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusPendingReview PaymentStatus = "pending_review"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusRefunded      PaymentStatus = "refunded"
	PaymentStatusRejected      PaymentStatus = "rejected"
)

// Booking references either a destination or an event. Both references may be
// populated, and either may dangle once the catalog record is removed.
type Booking struct {
	Base
	BookingCode      string        `db:"booking_code"`
	UserID           uuid.UUID     `db:"user_id"`
	DestinationID    *uuid.UUID    `db:"destination_id"`
	EventID          *uuid.UUID    `db:"event_id"`
	Seats            int           `db:"seats"`
	TotalAmount      float64       `db:"total_amount"`
	TravelDate       time.Time     `db:"travel_date"`
	ContactPhone     string        `db:"contact_phone"`
	EmergencyContact *string       `db:"emergency_contact"`
	SpecialRequests  *string       `db:"special_requests"`
	Status           BookingStatus `db:"status"`
	PaymentStatus    PaymentStatus `db:"payment_status"`
	PaymentReference *string       `db:"payment_reference"`
}

// IsActive reports whether the booking still occupies its slot.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// SlotID returns the catalog reference capacity is counted against: the event
// when present, the destination otherwise.
func (b *Booking) SlotID() *uuid.UUID {
	if b.EventID != nil {
		return b.EventID
	}
	return b.DestinationID
}
