package response

import (
	"time"

	"safarsaga-backend/internal/data/entity"
)

type GalleryImageResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	DestinationID *string   `json:"destination_id,omitempty"`
	URL           string    `json:"url"`
	Caption       *string   `json:"caption,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func GalleryImageToResponse(image *entity.GalleryImage) GalleryImageResponse {
	resp := GalleryImageResponse{
		ID:        image.ID.String(),
		UserID:    image.UserID.String(),
		URL:       image.URL,
		Caption:   image.Caption,
		CreatedAt: image.CreatedAt,
	}
	if image.DestinationID != nil {
		id := image.DestinationID.String()
		resp.DestinationID = &id
	}
	return resp
}
