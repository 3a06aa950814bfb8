package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ImageRepo interface {
	// AddSpotImage stores img; a preview image replaces the spot's previous preview.
	AddSpotImage(ctx context.Context, img *domain.Image) error
	GetSpotImage(ctx context.Context, id string) (*domain.Image, error)
	DeleteSpotImage(ctx context.Context, id string) error
	// AddReviewImage stores img unless the review already holds limit images.
	AddReviewImage(ctx context.Context, img *domain.Image, limit int) error
	GetReviewImage(ctx context.Context, id string) (*domain.Image, error)
	DeleteReviewImage(ctx context.Context, id string) error
}
