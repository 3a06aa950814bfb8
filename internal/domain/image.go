package domain

import "time"

// Image is a URL attached to a spot or a review. ParentID is the id of that spot or review.
type Image struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parent_id"`
	URL       string    `json:"url"`
	Preview   bool      `json:"preview"`
	CreatedAt time.Time `json:"created_at"`
}

type ImageInput struct {
	URL     string `json:"url"     validate:"required,url"`
	Preview bool   `json:"preview"`
}
