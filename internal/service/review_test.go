package service

import (
	"context"
	"testing"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stpnv0/StayBooker/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewMocks struct {
	repo   *mocks.MockReviewRepo
	spots  *mocks.MockSpotRepo
	images *mocks.MockImageRepo
}

func newReviewService(t *testing.T) (*ReviewService, reviewMocks) {
	t.Helper()
	m := reviewMocks{
		repo:   mocks.NewMockReviewRepo(t),
		spots:  mocks.NewMockSpotRepo(t),
		images: mocks.NewMockImageRepo(t),
	}
	return NewReviewService(m.repo, m.spots, m.images, validator.New(), newTestLogger(t)), m
}

func TestReviewService_Create_Success(t *testing.T) {
	svc, m := newReviewService(t)

	m.spots.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Spot{ID: "s1"}, nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	review, err := svc.Create(context.Background(), "s1", "u1", domain.ReviewInput{Text: "Lovely stay", Stars: 5})

	require.NoError(t, err)
	assert.Equal(t, "s1", review.SpotID)
	assert.Equal(t, "u1", review.UserID)
	assert.Equal(t, 5, review.Stars)
}

func TestReviewService_Create_AlreadyReviewed(t *testing.T) {
	svc, m := newReviewService(t)

	m.spots.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Spot{ID: "s1"}, nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyReviewed)

	_, err := svc.Create(context.Background(), "s1", "u1", domain.ReviewInput{Text: "Again", Stars: 3})

	assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
}

func TestReviewService_Create_InvalidStars(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.Create(context.Background(), "s1", "u1", domain.ReviewInput{Text: "Too good", Stars: 6})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReviewService_Create_SpotNotFound(t *testing.T) {
	svc, m := newReviewService(t)

	m.spots.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSpotNotFound)

	_, err := svc.Create(context.Background(), "missing", "u1", domain.ReviewInput{Text: "?", Stars: 1})

	assert.ErrorIs(t, err, domain.ErrSpotNotFound)
}

func TestReviewService_Update_NotAuthor(t *testing.T) {
	svc, m := newReviewService(t)

	m.repo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Review{ID: "r1", UserID: "u1"}, nil)

	_, err := svc.Update(context.Background(), "r1", "u2", domain.ReviewInput{Text: "Edited", Stars: 2})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReviewService_Update_Success(t *testing.T) {
	svc, m := newReviewService(t)

	m.repo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Review{ID: "r1", UserID: "u1", Stars: 5}, nil)
	m.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	review, err := svc.Update(context.Background(), "r1", "u1", domain.ReviewInput{Text: "Edited", Stars: 2})

	require.NoError(t, err)
	assert.Equal(t, 2, review.Stars)
	assert.Equal(t, "Edited", review.Text)
}

func TestReviewService_Delete(t *testing.T) {
	svc, m := newReviewService(t)

	m.repo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Review{ID: "r1", UserID: "u1"}, nil)
	m.repo.EXPECT().Delete(mock.Anything, "r1").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), "r1", "u1"))
}

func TestReviewService_AddImage_LimitReached(t *testing.T) {
	svc, m := newReviewService(t)

	m.repo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Review{ID: "r1", UserID: "u1"}, nil)
	m.images.EXPECT().AddReviewImage(mock.Anything, mock.Anything, domain.MaxReviewImages).Return(domain.ErrImageLimitReached)

	_, err := svc.AddImage(context.Background(), "r1", "u1", domain.ImageInput{URL: "https://img.example/r.png"})

	assert.ErrorIs(t, err, domain.ErrImageLimitReached)
}

func TestReviewService_DeleteImage(t *testing.T) {
	svc, m := newReviewService(t)

	m.images.EXPECT().GetReviewImage(mock.Anything, "i1").Return(&domain.Image{ID: "i1", ParentID: "r1"}, nil)
	m.repo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Review{ID: "r1", UserID: "u1"}, nil)
	m.images.EXPECT().DeleteReviewImage(mock.Anything, "i1").Return(nil)

	assert.NoError(t, svc.DeleteImage(context.Background(), "i1", "u1"))
}

func TestReviewService_ListBySpot(t *testing.T) {
	svc, m := newReviewService(t)

	m.spots.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Spot{ID: "s1"}, nil)
	m.repo.EXPECT().ListBySpot(mock.Anything, "s1").Return([]*domain.ReviewDetails{{Review: domain.Review{ID: "r1"}}}, nil)

	reviews, err := svc.ListBySpot(context.Background(), "s1")

	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
