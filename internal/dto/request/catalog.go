package request

type CreateDestinationRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Country      string  `json:"country" validate:"required,min=2,max=60"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	PricePerSeat float64 `json:"price_per_seat" validate:"required,gte=0"`
	Capacity     int     `json:"capacity" validate:"required,min=1"`
	ImageURL     *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateDestinationRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Country      *string  `json:"country,omitempty" validate:"omitempty,min=2,max=60"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	PricePerSeat *float64 `json:"price_per_seat,omitempty" validate:"omitempty,gte=0"`
	Capacity     *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	ImageURL     *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type CreateEventRequest struct {
	DestinationID *string `json:"destination_id,omitempty" validate:"omitempty,uuid4"`
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	StartDate     string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	PricePerSeat  float64 `json:"price_per_seat" validate:"required,gte=0"`
	Capacity      int     `json:"capacity" validate:"required,min=1"`
}
