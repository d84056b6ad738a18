package response

import (
	"time"

	"safarsaga-backend/internal/data/entity"
)

type DestinationResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Country      string    `json:"country"`
	Description  *string   `json:"description,omitempty"`
	PricePerSeat float64   `json:"price_per_seat"`
	Capacity     int       `json:"capacity"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type EventResponse struct {
	ID            string    `json:"id"`
	DestinationID *string   `json:"destination_id,omitempty"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	StartDate     string    `json:"start_date"`
	PricePerSeat  float64   `json:"price_per_seat"`
	Capacity      int       `json:"capacity"`
	CreatedAt     time.Time `json:"created_at"`
}

func DestinationToResponse(d *entity.Destination) DestinationResponse {
	return DestinationResponse{
		ID:           d.ID.String(),
		Name:         d.Name,
		Country:      d.Country,
		Description:  d.Description,
		PricePerSeat: d.PricePerSeat,
		Capacity:     d.Capacity,
		ImageURL:     d.ImageURL,
		CreatedAt:    d.CreatedAt,
	}
}

func EventToResponse(e *entity.Event) EventResponse {
	resp := EventResponse{
		ID:           e.ID.String(),
		Name:         e.Name,
		Description:  e.Description,
		StartDate:    e.StartDate.Format("2006-01-02"),
		PricePerSeat: e.PricePerSeat,
		Capacity:     e.Capacity,
		CreatedAt:    e.CreatedAt,
	}
	if e.DestinationID != nil {
		id := e.DestinationID.String()
		resp.DestinationID = &id
	}
	return resp
}
