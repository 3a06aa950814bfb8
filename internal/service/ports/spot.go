package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type SpotRepo interface {
	Create(ctx context.Context, s *domain.Spot) error
	Update(ctx context.Context, s *domain.Spot) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Spot, error)
	GetDetails(ctx context.Context, id string) (*domain.SpotDetails, error)
	List(ctx context.Context) ([]*domain.SpotListing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.SpotListing, error)
}
