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

type ReviewService struct {
	repo      ports.ReviewRepo
	spotRepo  ports.SpotRepo
	imageRepo ports.ImageRepo
	validator ports.InputValidator
	logger    logger.Logger
}

func NewReviewService(
	repo ports.ReviewRepo,
	spotRepo ports.SpotRepo,
	imageRepo ports.ImageRepo,
	validator ports.InputValidator,
	logger logger.Logger,
) *ReviewService {
	return &ReviewService{
		repo:      repo,
		spotRepo:  spotRepo,
		imageRepo: imageRepo,
		validator: validator,
		logger:    logger,
	}
}

func (s *ReviewService) Create(ctx context.Context, spotID, userID string, input domain.ReviewInput) (*domain.Review, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.spotRepo.GetByID(ctx, spotID); err != nil {
		return nil, fmt.Errorf("check spot: %w", err)
	}

	now := time.Now().UTC()
	review := &domain.Review{
		ID:        uuid.New().String(),
		SpotID:    spotID,
		UserID:    userID,
		Text:      input.Text,
		Stars:     input.Stars,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.Info("review created",
		logger.String("review_id", review.ID),
		logger.String("spot_id", spotID),
		logger.Int("stars", review.Stars),
	)

	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, reviewID, userID string, input domain.ReviewInput) (*domain.Review, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	review, err := s.authored(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	review.Text = input.Text
	review.Stars = input.Stars
	review.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, reviewID, userID string) error {
	if _, err := s.authored(ctx, reviewID, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	return nil
}

func (s *ReviewService) ListBySpot(ctx context.Context, spotID string) ([]*domain.ReviewDetails, error) {
	if _, err := s.spotRepo.GetByID(ctx, spotID); err != nil {
		return nil, fmt.Errorf("check spot: %w", err)
	}

	return s.repo.ListBySpot(ctx, spotID)
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]*domain.ReviewDetails, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ReviewService) AddImage(ctx context.Context, reviewID, userID string, input domain.ImageInput) (*domain.Image, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.authored(ctx, reviewID, userID); err != nil {
		return nil, err
	}

	img := &domain.Image{
		ID:        uuid.New().String(),
		ParentID:  reviewID,
		URL:       input.URL,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.imageRepo.AddReviewImage(ctx, img, domain.MaxReviewImages); err != nil {
		return nil, fmt.Errorf("add review image: %w", err)
	}

	return img, nil
}

func (s *ReviewService) DeleteImage(ctx context.Context, imageID, userID string) error {
	img, err := s.imageRepo.GetReviewImage(ctx, imageID)
	if err != nil {
		return fmt.Errorf("get review image: %w", err)
	}

	if _, err = s.authored(ctx, img.ParentID, userID); err != nil {
		return err
	}

	if err = s.imageRepo.DeleteReviewImage(ctx, imageID); err != nil {
		return fmt.Errorf("delete review image: %w", err)
	}

	return nil
}

func (s *ReviewService) authored(ctx context.Context, reviewID, userID string) (*domain.Review, error) {
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	if review.UserID != userID {
		return nil, domain.ErrForbidden
	}

	return review, nil
}
