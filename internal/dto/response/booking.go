package response

import (
	"time"

	"safarsaga-backend/internal/data/entity"
)

type BookingResponse struct {
	ID               string               `json:"id"`
	BookingCode      string               `json:"booking_code"`
	UserID           string               `json:"user_id"`
	DestinationID    *string              `json:"destination_id,omitempty"`
	DestinationName  string               `json:"destination_name,omitempty"`
	EventID          *string              `json:"event_id,omitempty"`
	EventName        string               `json:"event_name,omitempty"`
	Seats            int                  `json:"seats"`
	TotalAmount      float64              `json:"total_amount"`
	TravelDate       string               `json:"travel_date"`
	ContactPhone     string               `json:"contact_phone"`
	EmergencyContact *string              `json:"emergency_contact,omitempty"`
	SpecialRequests  *string              `json:"special_requests,omitempty"`
	Status           entity.BookingStatus `json:"status"`
	PaymentStatus    entity.PaymentStatus `json:"payment_status"`
	PaymentReference *string              `json:"payment_reference,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
}

// BookingToResponse fills the catalog names when the lookups succeed; both are
// optional because either reference may dangle.
func BookingToResponse(booking *entity.Booking, destination *entity.Destination, event *entity.Event) BookingResponse {
	resp := BookingResponse{
		ID:               booking.ID.String(),
		BookingCode:      booking.BookingCode,
		UserID:           booking.UserID.String(),
		Seats:            booking.Seats,
		TotalAmount:      booking.TotalAmount,
		TravelDate:       booking.TravelDate.Format("2006-01-02"),
		ContactPhone:     booking.ContactPhone,
		EmergencyContact: booking.EmergencyContact,
		SpecialRequests:  booking.SpecialRequests,
		Status:           booking.Status,
		PaymentStatus:    booking.PaymentStatus,
		PaymentReference: booking.PaymentReference,
		CreatedAt:        booking.CreatedAt,
	}

	if booking.DestinationID != nil {
		id := booking.DestinationID.String()
		resp.DestinationID = &id
	}
	if booking.EventID != nil {
		id := booking.EventID.String()
		resp.EventID = &id
	}
	if destination != nil {
		resp.DestinationName = destination.Name
	}
	if event != nil {
		resp.EventName = event.Name
	}

	return resp
}
