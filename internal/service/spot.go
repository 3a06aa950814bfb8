package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SpotService struct {
	repo      ports.SpotRepo
	imageRepo ports.ImageRepo
	validator ports.InputValidator
	logger    logger.Logger
}

func NewSpotService(
	repo ports.SpotRepo,
	imageRepo ports.ImageRepo,
	validator ports.InputValidator,
	logger logger.Logger,
) *SpotService {
	return &SpotService{
		repo:      repo,
		imageRepo: imageRepo,
		validator: validator,
		logger:    logger,
	}
}

func (s *SpotService) Create(ctx context.Context, ownerID string, input domain.SpotInput) (*domain.Spot, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	spot := &domain.Spot{ID: uuid.New().String(), OwnerID: ownerID, CreatedAt: now, UpdatedAt: now}
	applySpotInput(spot, input)

	if err := s.repo.Create(ctx, spot); err != nil {
		return nil, fmt.Errorf("create spot: %w", err)
	}

	s.logger.Info("spot created",
		logger.String("spot_id", spot.ID),
		logger.String("owner_id", ownerID),
	)

	return spot, nil
}

func (s *SpotService) Update(ctx context.Context, spotID, userID string, input domain.SpotInput) (*domain.Spot, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	spot, err := s.owned(ctx, spotID, userID)
	if err != nil {
		return nil, err
	}

	applySpotInput(spot, input)
	spot.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, spot); err != nil {
		return nil, fmt.Errorf("update spot: %w", err)
	}

	return spot, nil
}

func (s *SpotService) Delete(ctx context.Context, spotID, userID string) error {
	if _, err := s.owned(ctx, spotID, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, spotID); err != nil {
		return fmt.Errorf("delete spot: %w", err)
	}

	s.logger.Info("spot deleted", logger.String("spot_id", spotID))
	return nil
}

func (s *SpotService) GetDetails(ctx context.Context, id string) (*domain.SpotDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *SpotService) List(ctx context.Context) ([]*domain.SpotListing, error) {
	return s.repo.List(ctx)
}

func (s *SpotService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.SpotListing, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *SpotService) AddImage(ctx context.Context, spotID, userID string, input domain.ImageInput) (*domain.Image, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.owned(ctx, spotID, userID); err != nil {
		return nil, err
	}

	img := &domain.Image{
		ID:        uuid.New().String(),
		ParentID:  spotID,
		URL:       input.URL,
		Preview:   input.Preview,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.imageRepo.AddSpotImage(ctx, img); err != nil {
		return nil, fmt.Errorf("add spot image: %w", err)
	}

	return img, nil
}

func (s *SpotService) DeleteImage(ctx context.Context, imageID, userID string) error {
	img, err := s.imageRepo.GetSpotImage(ctx, imageID)
	if err != nil {
		return fmt.Errorf("get spot image: %w", err)
	}

	if _, err = s.owned(ctx, img.ParentID, userID); err != nil {
		return err
	}

	if err = s.imageRepo.DeleteSpotImage(ctx, imageID); err != nil {
		return fmt.Errorf("delete spot image: %w", err)
	}

	return nil
}

// owned loads the spot and checks that userID owns it.
func (s *SpotService) owned(ctx context.Context, spotID, userID string) (*domain.Spot, error) {
	spot, err := s.repo.GetByID(ctx, spotID)
	if err != nil {
		return nil, fmt.Errorf("get spot: %w", err)
	}

	if spot.OwnerID != userID {
		return nil, domain.ErrForbidden
	}

	return spot, nil
}

func applySpotInput(spot *domain.Spot, in domain.SpotInput) {
	spot.Address = in.Address
	spot.City = in.City
	spot.State = in.State
	spot.Country = in.Country
	spot.Lat = in.Lat
	spot.Lng = in.Lng
	spot.Name = in.Name
	spot.Description = in.Description
	spot.Price = in.Price
}
