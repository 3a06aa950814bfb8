package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) error
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	ListBySpot(ctx context.Context, spotID string) ([]*domain.ReviewDetails, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.ReviewDetails, error)
}
