package domain

import "time"

type Spot struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SpotSummary is the short form of a spot embedded in booking and review listings.
type SpotSummary struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"owner_id"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PreviewImage string  `json:"preview_image"`
}

type SpotListing struct {
	Spot
	AvgRating    float64 `json:"avg_rating"`
	PreviewImage string  `json:"preview_image"`
}

type SpotDetails struct {
	Spot
	NumReviews    int         `json:"num_reviews"`
	AvgStarRating float64     `json:"avg_star_rating"`
	Images        []Image     `json:"images"`
	Owner         UserSummary `json:"owner"`
}

type SpotInput struct {
	Address     string  `json:"address"     validate:"required"`
	City        string  `json:"city"        validate:"required"`
	State       string  `json:"state"       validate:"required"`
	Country     string  `json:"country"     validate:"required"`
	Lat         float64 `json:"lat"         validate:"min=-90,max=90"`
	Lng         float64 `json:"lng"         validate:"min=-180,max=180"`
	Name        string  `json:"name"        validate:"required,max=50"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"gt=0"`
}
