package entity

type Destination struct {
	Base
	Name         string  `db:"name"`
	Country      string  `db:"country"`
	Description  *string `db:"description"`
	PricePerSeat float64 `db:"price_per_seat"`
	Capacity     int     `db:"capacity"`
	ImageURL     *string `db:"image_url"`
	IsActive     bool    `db:"is_active"`
}
