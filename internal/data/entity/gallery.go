package entity

import (
	"github.com/google/uuid"
)

type GalleryImage struct {
	BaseSimple
	UserID        uuid.UUID  `db:"user_id"`
	DestinationID *uuid.UUID `db:"destination_id"`
	URL           string     `db:"url"`
	PublicID      string     `db:"public_id"`
	Caption       *string    `db:"caption"`
}
