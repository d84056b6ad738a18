package request

// CreateBookingRequest carries either a destination or an event reference;
// exactly one must be present.
type CreateBookingRequest struct {
	DestinationID    *string `json:"destination_id,omitempty" validate:"omitempty,uuid4"`
	EventID          *string `json:"event_id,omitempty" validate:"omitempty,uuid4"`
	Seats            int     `json:"seats" validate:"required,min=1,max=50"`
	TravelDate       string  `json:"travel_date" validate:"required"`
	ContactPhone     string  `json:"contact_phone" validate:"required,min=7,max=20"`
	EmergencyContact *string `json:"emergency_contact,omitempty" validate:"omitempty,min=7,max=20"`
	SpecialRequests  *string `json:"special_requests,omitempty" validate:"omitempty,max=500"`
}

type SubmitPaymentRequest struct {
	PaymentReference string `json:"payment_reference" validate:"required,min=4,max=100"`
}

type RejectPaymentRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}
