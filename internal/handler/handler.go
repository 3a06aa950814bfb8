package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type SpotSvc interface {
	Create(ctx context.Context, ownerID string, input domain.SpotInput) (*domain.Spot, error)
	Update(ctx context.Context, spotID, userID string, input domain.SpotInput) (*domain.Spot, error)
	Delete(ctx context.Context, spotID, userID string) error
	GetDetails(ctx context.Context, id string) (*domain.SpotDetails, error)
	List(ctx context.Context) ([]*domain.SpotListing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.SpotListing, error)
	AddImage(ctx context.Context, spotID, userID string, input domain.ImageInput) (*domain.Image, error)
	DeleteImage(ctx context.Context, imageID, userID string) error
}

type BookingSvc interface {
	Book(ctx context.Context, spotID, userID string, dates domain.DateRange) (*domain.Booking, error)
	Update(ctx context.Context, bookingID, userID string, dates domain.DateRange) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error)
	ListBySpot(ctx context.Context, spotID, userID string) ([]*domain.BookingDetails, bool, error)
}

type ReviewSvc interface {
	Create(ctx context.Context, spotID, userID string, input domain.ReviewInput) (*domain.Review, error)
	Update(ctx context.Context, reviewID, userID string, input domain.ReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, reviewID, userID string) error
	ListBySpot(ctx context.Context, spotID string) ([]*domain.ReviewDetails, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.ReviewDetails, error)
	AddImage(ctx context.Context, reviewID, userID string, input domain.ImageInput) (*domain.Image, error)
	DeleteImage(ctx context.Context, imageID, userID string) error
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	spotService    SpotSvc
	bookingService BookingSvc
	reviewService  ReviewSvc
	userService    UserSvc
}

func NewHandler(spotService SpotSvc, bookingService BookingSvc, reviewService ReviewSvc, userService UserSvc) *Handler {
	return &Handler{
		spotService:    spotService,
		bookingService: bookingService,
		reviewService:  reviewService,
		userService:    userService,
	}
}

// pathID reads a UUID path parameter and answers 400 when it is malformed.
func pathID(c *ginext.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Bad Request",
			Errors:  map[string]string{name: "invalid id"},
		})
		return "", false
	}
	return id, true
}

// currentUser is only called behind middleware.RequireUser.
func currentUser(c *ginext.Context) string {
	id, _ := middleware.UserID(c)
	return id
}

func badBody(c *ginext.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Message: "Bad Request",
		Errors:  map[string]string{"body": err.Error()},
	})
}

var notFoundMessages = []struct {
	err     error
	message string
}{
	{domain.ErrSpotNotFound, "Spot couldn't be found"},
	{domain.ErrBookingNotFound, "Booking couldn't be found"},
	{domain.ErrReviewNotFound, "Review couldn't be found"},
	{domain.ErrImageNotFound, "Image couldn't be found"},
	{domain.ErrUserNotFound, "User couldn't be found"},
}

var forbiddenMessages = []struct {
	err     error
	message string
}{
	{domain.ErrBookingConflict, "Sorry, this spot is already booked for the specified dates"},
	{domain.ErrPastBookingImmutable, "Past bookings can't be modified"},
	{domain.ErrBookingStarted, "Bookings that have been started can't be deleted"},
	{domain.ErrOwnSpotBooking, "Spot owners can't book their own spot"},
	{domain.ErrAlreadyReviewed, "User already has a review for this spot"},
	{domain.ErrImageLimitReached, "Maximum number of images for this resource was reached"},
	{domain.ErrForbidden, "Forbidden"},
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var fields map[string]string
	var fieldErr *domain.FieldError
	if errors.As(err, &fieldErr) {
		fields = fieldErr.Fields
	}

	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: nf.message})
			return
		}
	}

	for _, f := range forbiddenMessages {
		if errors.Is(err, f.err) {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: f.message, Errors: fields})
			return
		}
	}

	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "User already exists",
			Errors:  map[string]string{"username": "User with that username already exists"},
		})

	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "User already exists",
			Errors:  map[string]string{"email": "User with that email already exists"},
		})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Bad Request", Errors: fields})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
