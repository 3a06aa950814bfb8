package domain

import "time"

// MaxReviewImages caps the images attached to one review.
const MaxReviewImages = 10

type Review struct {
	ID        string    `json:"id"`
	SpotID    string    `json:"spot_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"review"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewDetails struct {
	Review
	User   UserSummary  `json:"user"`
	Spot   *SpotSummary `json:"spot,omitempty"`
	Images []Image      `json:"images"`
}

type ReviewInput struct {
	Text  string `json:"review" validate:"required"`
	Stars int    `json:"stars"  validate:"required,min=1,max=5"`
}
