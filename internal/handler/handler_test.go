package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/StayBooker/internal/handler/mocks"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type mocks struct {
	spot    *hmocks.MockSpotSvc
	booking *hmocks.MockBookingSvc
	review  *hmocks.MockReviewSvc
	user    *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (*mocks, http.Handler) {
	t.Helper()
	m := &mocks{
		spot:    hmocks.NewMockSpotSvc(t),
		booking: hmocks.NewMockBookingSvc(t),
		review:  hmocks.NewMockReviewSvc(t),
		user:    hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.spot, m.booking, m.review, m.user)

	r := ginext.New("test")
	r.Use(middleware.CurrentUser())
	auth := middleware.RequireUser()

	api := r.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/current", auth, h.GetCurrentUser)

		api.GET("/spots", h.ListSpots)
		api.GET("/spots/current", auth, h.ListCurrentUserSpots)
		api.GET("/spots/:spotId", h.GetSpot)
		api.POST("/spots", auth, h.CreateSpot)
		api.PUT("/spots/:spotId", auth, h.UpdateSpot)
		api.DELETE("/spots/:spotId", auth, h.DeleteSpot)
		api.POST("/spots/:spotId/images", auth, h.AddSpotImage)
		api.DELETE("/spot-images/:imageId", auth, h.DeleteSpotImage)

		api.GET("/bookings/current", auth, h.ListCurrentUserBookings)
		api.GET("/spots/:spotId/bookings", auth, h.ListSpotBookings)
		api.POST("/spots/:spotId/bookings", auth, h.CreateBooking)
		api.PUT("/bookings/:bookingId", auth, h.UpdateBooking)
		api.DELETE("/bookings/:bookingId", auth, h.DeleteBooking)

		api.GET("/spots/:spotId/reviews", h.ListSpotReviews)
		api.GET("/reviews/current", auth, h.ListCurrentUserReviews)
		api.POST("/spots/:spotId/reviews", auth, h.CreateReview)
		api.PUT("/reviews/:reviewId", auth, h.UpdateReview)
		api.DELETE("/reviews/:reviewId", auth, h.DeleteReview)
		api.POST("/reviews/:reviewId/images", auth, h.AddReviewImage)
		api.DELETE("/review-images/:imageId", auth, h.DeleteReviewImage)
	}

	return m, r
}

func do(t *testing.T, r http.Handler, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	spotID := uuid.New().String()
	userID := uuid.New().String()
	dates := domain.NewDateRange(date("2025-03-10"), date("2025-03-12"))
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		SpotID:    spotID,
		UserID:    userID,
		StartDate: dates.Start,
		EndDate:   dates.End,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	m.booking.EXPECT().Book(mock.Anything, spotID, userID, dates).Return(booking, nil)

	w := do(t, r, http.MethodPost, "/api/spots/"+spotID+"/bookings", userID,
		dto.BookingRequest{StartDate: "2025-03-10", EndDate: "2025-03-12"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "2025-03-10", resp.StartDate)
	assert.Equal(t, "2025-03-12", resp.EndDate)
}

func TestHandler_CreateBooking_RequiresUser(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/api/spots/"+uuid.New().String()+"/bookings", "",
		dto.BookingRequest{StartDate: "2025-03-10", EndDate: "2025-03-12"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authentication required", decodeError(t, w).Message)
}

func TestHandler_CreateBooking_InvalidSpotID(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/api/spots/bad-id/bookings", uuid.New().String(),
		dto.BookingRequest{StartDate: "2025-03-10", EndDate: "2025-03-12"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_MalformedDates(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/api/spots/"+uuid.New().String()+"/bookings", uuid.New().String(),
		dto.BookingRequest{StartDate: "10/03/2025", EndDate: ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "Bad Request", resp.Message)
	assert.Contains(t, resp.Errors, "startDate")
	assert.Contains(t, resp.Errors, "endDate")
}

func TestHandler_CreateBooking_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
		wantErrors  map[string]string
	}{
		{
			name:        "start date in the past",
			err:         domain.NewFieldError(domain.ErrStartDateInPast, "startDate", "startDate cannot be in the past"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Bad Request",
			wantErrors:  map[string]string{"startDate": "startDate cannot be in the past"},
		},
		{
			name:        "end before start",
			err:         domain.NewFieldError(domain.ErrEndBeforeStart, "endDate", "endDate cannot be on or before startDate"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Bad Request",
			wantErrors:  map[string]string{"endDate": "endDate cannot be on or before startDate"},
		},
		{
			name:        "start date conflict",
			err:         domain.NewFieldError(domain.ErrBookingConflict, "startDate", "Start date conflicts with an existing booking"),
			wantCode:    http.StatusForbidden,
			wantMessage: "Sorry, this spot is already booked for the specified dates",
			wantErrors:  map[string]string{"startDate": "Start date conflicts with an existing booking"},
		},
		{
			name:        "end date conflict",
			err:         domain.NewFieldError(domain.ErrBookingConflict, "endDate", "End date conflicts with an existing booking"),
			wantCode:    http.StatusForbidden,
			wantMessage: "Sorry, this spot is already booked for the specified dates",
			wantErrors:  map[string]string{"endDate": "End date conflicts with an existing booking"},
		},
		{
			name:        "conflict caught by the database",
			err:         domain.ErrBookingConflict,
			wantCode:    http.StatusForbidden,
			wantMessage: "Sorry, this spot is already booked for the specified dates",
		},
		{
			name:        "own spot",
			err:         domain.ErrOwnSpotBooking,
			wantCode:    http.StatusForbidden,
			wantMessage: "Spot owners can't book their own spot",
		},
		{
			name:        "spot not found",
			err:         domain.ErrSpotNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: "Spot couldn't be found",
		},
		{
			name:        "internal",
			err:         assert.AnError,
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)

			spotID := uuid.New().String()
			userID := uuid.New().String()
			m.booking.EXPECT().Book(mock.Anything, spotID, userID, mock.Anything).Return(nil, tt.err)

			w := do(t, r, http.MethodPost, "/api/spots/"+spotID+"/bookings", userID,
				dto.BookingRequest{StartDate: "2025-03-10", EndDate: "2025-03-12"})

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantErrors, resp.Errors)
		})
	}
}

func TestHandler_UpdateBooking_PastBooking(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	userID := uuid.New().String()
	m.booking.EXPECT().Update(mock.Anything, bookingID, userID, mock.Anything).
		Return(nil, domain.ErrPastBookingImmutable)

	w := do(t, r, http.MethodPut, "/api/bookings/"+bookingID, userID,
		dto.BookingRequest{StartDate: "2025-03-10", EndDate: "2025-03-12"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Past bookings can't be modified", decodeError(t, w).Message)
}

func TestHandler_UpdateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	userID := uuid.New().String()
	dates := domain.NewDateRange(date("2025-04-01"), date("2025-04-05"))
	m.booking.EXPECT().Update(mock.Anything, bookingID, userID, dates).Return(&domain.Booking{
		ID:        bookingID,
		UserID:    userID,
		StartDate: dates.Start,
		EndDate:   dates.End,
	}, nil)

	w := do(t, r, http.MethodPut, "/api/bookings/"+bookingID, userID,
		dto.BookingRequest{StartDate: "2025-04-01", EndDate: "2025-04-05"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-04-05", resp.EndDate)
}

func TestHandler_DeleteBooking(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{name: "deleted", wantCode: http.StatusOK, wantMessage: "Successfully deleted"},
		{name: "started", err: domain.ErrBookingStarted, wantCode: http.StatusForbidden,
			wantMessage: "Bookings that have been started can't be deleted"},
		{name: "not found", err: domain.ErrBookingNotFound, wantCode: http.StatusNotFound,
			wantMessage: "Booking couldn't be found"},
		{name: "someone else's", err: domain.ErrForbidden, wantCode: http.StatusForbidden,
			wantMessage: "Forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)

			bookingID := uuid.New().String()
			userID := uuid.New().String()
			m.booking.EXPECT().Cancel(mock.Anything, bookingID, userID).Return(tt.err)

			w := do(t, r, http.MethodDelete, "/api/bookings/"+bookingID, userID, nil)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, w).Message)
		})
	}
}

func TestHandler_ListSpotBookings_Owner(t *testing.T) {
	m, r := setupRouter(t)

	spotID := uuid.New().String()
	ownerID := uuid.New().String()
	guest := &domain.UserSummary{ID: uuid.New().String(), FirstName: "Ann", LastName: "Lee"}
	bookings := []*domain.BookingDetails{{
		Booking: domain.Booking{ID: uuid.New().String(), SpotID: spotID, UserID: guest.ID,
			StartDate: date("2025-03-10"), EndDate: date("2025-03-12")},
		User: guest,
	}}
	m.booking.EXPECT().ListBySpot(mock.Anything, spotID, ownerID).Return(bookings, true, nil)

	w := do(t, r, http.MethodGet, "/api/spots/"+spotID+"/bookings", ownerID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OwnerBookingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	require.NotNil(t, resp.Bookings[0].User)
	assert.Equal(t, "Ann", resp.Bookings[0].User.FirstName)
	assert.Equal(t, bookings[0].ID, resp.Bookings[0].ID)
}

func TestHandler_ListSpotBookings_Guest(t *testing.T) {
	m, r := setupRouter(t)

	spotID := uuid.New().String()
	userID := uuid.New().String()
	bookings := []*domain.BookingDetails{{
		Booking: domain.Booking{ID: uuid.New().String(), SpotID: spotID, UserID: uuid.New().String(),
			StartDate: date("2025-03-10"), EndDate: date("2025-03-12")},
		User: &domain.UserSummary{FirstName: "Ann"},
	}}
	m.booking.EXPECT().ListBySpot(mock.Anything, spotID, userID).Return(bookings, false, nil)

	w := do(t, r, http.MethodGet, "/api/spots/"+spotID+"/bookings", userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"Bookings":[{"spotId":"`+spotID+`","startDate":"2025-03-10","endDate":"2025-03-12"}]}`,
		w.Body.String(),
	)
}

func TestHandler_ListCurrentUserBookings(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	bookings := []*domain.BookingDetails{{
		Booking: domain.Booking{ID: uuid.New().String(), UserID: userID,
			StartDate: date("2025-03-10"), EndDate: date("2025-03-12")},
		Spot: &domain.SpotSummary{ID: uuid.New().String(), Name: "Cabin", PreviewImage: "https://img/1.png"},
	}}
	m.booking.EXPECT().ListByUser(mock.Anything, userID).Return(bookings, nil)

	w := do(t, r, http.MethodGet, "/api/bookings/current", userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserBookingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "https://img/1.png", resp.Bookings[0].Spot.PreviewImage)
}

// --- Spots ---

func TestHandler_ListSpots(t *testing.T) {
	m, r := setupRouter(t)

	spots := []*domain.SpotListing{
		{Spot: domain.Spot{ID: "s1", Name: "Cabin"}, AvgRating: 4.5, PreviewImage: "https://img/1.png"},
		{Spot: domain.Spot{ID: "s2", Name: "Loft"}},
	}
	m.spot.EXPECT().List(mock.Anything).Return(spots, nil)

	w := do(t, r, http.MethodGet, "/api/spots", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SpotListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Spots, 2)
	assert.InDelta(t, 4.5, resp.Spots[0].AvgRating, 0.001)
}

func TestHandler_GetSpot_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	spotID := uuid.New().String()
	m.spot.EXPECT().GetDetails(mock.Anything, spotID).Return(nil, domain.ErrSpotNotFound)

	w := do(t, r, http.MethodGet, "/api/spots/"+spotID, "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Spot couldn't be found", decodeError(t, w).Message)
}

func TestHandler_GetSpot_Success(t *testing.T) {
	m, r := setupRouter(t)

	spotID := uuid.New().String()
	details := &domain.SpotDetails{
		Spot:          domain.Spot{ID: spotID, Name: "Cabin"},
		NumReviews:    2,
		AvgStarRating: 3.5,
		Images:        []domain.Image{{ID: "i1", URL: "https://img/1.png", Preview: true}},
		Owner:         domain.UserSummary{ID: "u1", FirstName: "Demo"},
	}
	m.spot.EXPECT().GetDetails(mock.Anything, spotID).Return(details, nil)

	w := do(t, r, http.MethodGet, "/api/spots/"+spotID, "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SpotDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.NumReviews)
	assert.Equal(t, "Demo", resp.Owner.FirstName)
	require.Len(t, resp.SpotImages, 1)
	assert.True(t, resp.SpotImages[0].Preview)
}

func TestHandler_CreateSpot_ValidationErrors(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.spot.EXPECT().Create(mock.Anything, userID, mock.Anything).Return(nil, &domain.FieldError{
		Err: domain.ErrValidation,
		Fields: map[string]string{
			"city":  "City is required",
			"price": "Price per day must be a positive number",
		},
	})

	w := do(t, r, http.MethodPost, "/api/spots", userID, dto.SpotRequest{Name: "Cabin"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Bad Request", resp.Message)
	assert.Equal(t, "City is required", resp.Errors["city"])
}

func TestHandler_CreateSpot_BadJSON(t *testing.T) {
	_, r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/api/spots", uuid.New().String(), `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateSpot_NotOwner(t *testing.T) {
	m, r := setupRouter(t)

	spotID := uuid.New().String()
	userID := uuid.New().String()
	m.spot.EXPECT().Update(mock.Anything, spotID, userID, mock.Anything).Return(nil, domain.ErrForbidden)

	w := do(t, r, http.MethodPut, "/api/spots/"+spotID, userID, dto.SpotRequest{Name: "Cabin"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteSpot(t *testing.T) {
	m, r := setupRouter(t)

	spotID := uuid.New().String()
	userID := uuid.New().String()
	m.spot.EXPECT().Delete(mock.Anything, spotID, userID).Return(nil)

	w := do(t, r, http.MethodDelete, "/api/spots/"+spotID, userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Successfully deleted"}`, w.Body.String())
}

func TestHandler_AddSpotImage(t *testing.T) {
	m, r := setupRouter(t)

	spotID := uuid.New().String()
	userID := uuid.New().String()
	input := domain.ImageInput{URL: "https://img/1.png", Preview: true}
	m.spot.EXPECT().AddImage(mock.Anything, spotID, userID, input).
		Return(&domain.Image{ID: "i1", ParentID: spotID, URL: input.URL, Preview: true}, nil)

	w := do(t, r, http.MethodPost, "/api/spots/"+spotID+"/images", userID,
		dto.ImageRequest{URL: input.URL, Preview: true})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"i1","url":"https://img/1.png","preview":true}`, w.Body.String())
}

func TestHandler_DeleteSpotImage_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	imageID := uuid.New().String()
	userID := uuid.New().String()
	m.spot.EXPECT().DeleteImage(mock.Anything, imageID, userID).Return(domain.ErrImageNotFound)

	w := do(t, r, http.MethodDelete, "/api/spot-images/"+imageID, userID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Image couldn't be found", decodeError(t, w).Message)
}

// --- Reviews ---

func TestHandler_CreateReview_AlreadyReviewed(t *testing.T) {
	m, r := setupRouter(t)

	spotID := uuid.New().String()
	userID := uuid.New().String()
	input := domain.ReviewInput{Text: "Great", Stars: 5}
	m.review.EXPECT().Create(mock.Anything, spotID, userID, input).Return(nil, domain.ErrAlreadyReviewed)

	w := do(t, r, http.MethodPost, "/api/spots/"+spotID+"/reviews", userID,
		dto.ReviewRequest{Review: "Great", Stars: 5})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "User already has a review for this spot", decodeError(t, w).Message)
}

func TestHandler_CreateReview_Success(t *testing.T) {
	m, r := setupRouter(t)

	spotID := uuid.New().String()
	userID := uuid.New().String()
	m.review.EXPECT().Create(mock.Anything, spotID, userID, mock.Anything).Return(&domain.Review{
		ID: "r1", SpotID: spotID, UserID: userID, Text: "Great", Stars: 5,
	}, nil)

	w := do(t, r, http.MethodPost, "/api/spots/"+spotID+"/reviews", userID,
		dto.ReviewRequest{Review: "Great", Stars: 5})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Great", resp.Review)
	assert.Equal(t, 5, resp.Stars)
}

func TestHandler_ListSpotReviews(t *testing.T) {
	m, r := setupRouter(t)

	spotID := uuid.New().String()
	reviews := []*domain.ReviewDetails{{
		Review: domain.Review{ID: "r1", SpotID: spotID, Text: "Nice", Stars: 4},
		User:   domain.UserSummary{ID: "u1", FirstName: "Ann"},
		Images: []domain.Image{{ID: "ri1", URL: "https://img/r.png"}},
	}}
	m.review.EXPECT().ListBySpot(mock.Anything, spotID).Return(reviews, nil)

	w := do(t, r, http.MethodGet, "/api/spots/"+spotID+"/reviews", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReviewListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, "Ann", resp.Reviews[0].User.FirstName)
	assert.Nil(t, resp.Reviews[0].Spot)
	require.Len(t, resp.Reviews[0].ReviewImages, 1)
}

func TestHandler_AddReviewImage_LimitReached(t *testing.T) {
	m, r := setupRouter(t)

	reviewID := uuid.New().String()
	userID := uuid.New().String()
	m.review.EXPECT().AddImage(mock.Anything, reviewID, userID, mock.Anything).
		Return(nil, domain.ErrImageLimitReached)

	w := do(t, r, http.MethodPost, "/api/reviews/"+reviewID+"/images", userID,
		dto.ImageRequest{URL: "https://img/r.png"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Maximum number of images for this resource was reached", decodeError(t, w).Message)
}

func TestHandler_DeleteReview(t *testing.T) {
	m, r := setupRouter(t)

	reviewID := uuid.New().String()
	userID := uuid.New().String()
	m.review.EXPECT().Delete(mock.Anything, reviewID, userID).Return(nil)

	w := do(t, r, http.MethodDelete, "/api/reviews/"+reviewID, userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
	}
	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := do(t, r, http.MethodPost, "/api/users", "", dto.CreateUserRequest{
		Username: "alice", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "Alice", resp.FirstName)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := do(t, r, http.MethodPost, "/api/users", "", dto.CreateUserRequest{Username: "taken"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "User already exists", resp.Message)
	assert.Contains(t, resp.Errors, "username")
}

func TestHandler_ListUsers_Success(t *testing.T) {
	m, r := setupRouter(t)

	users := []*domain.User{
		{ID: "u1", Username: "alice", CreatedAt: time.Now()},
	}
	m.user.EXPECT().List(mock.Anything).Return(users, nil)

	w := do(t, r, http.MethodGet, "/api/users", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetCurrentUser(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.user.EXPECT().GetByID(mock.Anything, userID).Return(&domain.User{ID: userID, Username: "alice"}, nil)

	w := do(t, r, http.MethodGet, "/api/users/current", userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.ID)
}
