package dto

import (
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func Deleted() MessageResponse {
	return MessageResponse{Message: "Successfully deleted"}
}

// Users

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegramChatId,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

type UserSummaryResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserSummaryResponse(u domain.UserSummary) UserSummaryResponse {
	return UserSummaryResponse{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}

// Spots

type SpotResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"ownerId"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type SpotListingResponse struct {
	SpotResponse
	AvgRating    float64 `json:"avgRating"`
	PreviewImage string  `json:"previewImage"`
}

type SpotListResponse struct {
	Spots []SpotListingResponse `json:"Spots"`
}

type SpotImageResponse struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Preview bool   `json:"preview"`
}

type SpotDetailsResponse struct {
	SpotResponse
	NumReviews    int                 `json:"numReviews"`
	AvgStarRating float64             `json:"avgStarRating"`
	SpotImages    []SpotImageResponse `json:"SpotImages"`
	Owner         UserSummaryResponse `json:"Owner"`
}

type SpotSummaryResponse struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"ownerId"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PreviewImage string  `json:"previewImage"`
}

func ToSpotResponse(s *domain.Spot) SpotResponse {
	return SpotResponse{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Address:     s.Address,
		City:        s.City,
		State:       s.State,
		Country:     s.Country,
		Lat:         s.Lat,
		Lng:         s.Lng,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}

func ToSpotListResponse(spots []*domain.SpotListing) SpotListResponse {
	resp := SpotListResponse{Spots: make([]SpotListingResponse, 0, len(spots))}
	for _, s := range spots {
		resp.Spots = append(resp.Spots, SpotListingResponse{
			SpotResponse: ToSpotResponse(&s.Spot),
			AvgRating:    s.AvgRating,
			PreviewImage: s.PreviewImage,
		})
	}
	return resp
}

func ToSpotDetailsResponse(d *domain.SpotDetails) SpotDetailsResponse {
	images := make([]SpotImageResponse, 0, len(d.Images))
	for i := range d.Images {
		images = append(images, ToSpotImageResponse(&d.Images[i]))
	}

	return SpotDetailsResponse{
		SpotResponse:  ToSpotResponse(&d.Spot),
		NumReviews:    d.NumReviews,
		AvgStarRating: d.AvgStarRating,
		SpotImages:    images,
		Owner:         ToUserSummaryResponse(d.Owner),
	}
}

func ToSpotImageResponse(img *domain.Image) SpotImageResponse {
	return SpotImageResponse{ID: img.ID, URL: img.URL, Preview: img.Preview}
}

func ToSpotSummaryResponse(s *domain.SpotSummary) *SpotSummaryResponse {
	if s == nil {
		return nil
	}
	return &SpotSummaryResponse{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		Country:      s.Country,
		Lat:          s.Lat,
		Lng:          s.Lng,
		Name:         s.Name,
		Price:        s.Price,
		PreviewImage: s.PreviewImage,
	}
}

// Bookings

type BookingResponse struct {
	ID        string `json:"id"`
	SpotID    string `json:"spotId"`
	UserID    string `json:"userId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type UserBookingResponse struct {
	BookingResponse
	Spot *SpotSummaryResponse `json:"Spot"`
}

type UserBookingsResponse struct {
	Bookings []UserBookingResponse `json:"Bookings"`
}

type OwnerBookingResponse struct {
	User *UserSummaryResponse `json:"User"`
	BookingResponse
}

type OwnerBookingsResponse struct {
	Bookings []OwnerBookingResponse `json:"Bookings"`
}

// GuestBookingResponse hides who booked the spot.
type GuestBookingResponse struct {
	SpotID    string `json:"spotId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type GuestBookingsResponse struct {
	Bookings []GuestBookingResponse `json:"Bookings"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		SpotID:    b.SpotID,
		UserID:    b.UserID,
		StartDate: domain.FormatDate(b.StartDate),
		EndDate:   domain.FormatDate(b.EndDate),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToUserBookingsResponse(bookings []*domain.BookingDetails) UserBookingsResponse {
	resp := UserBookingsResponse{Bookings: make([]UserBookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, UserBookingResponse{
			BookingResponse: ToBookingResponse(&b.Booking),
			Spot:            ToSpotSummaryResponse(b.Spot),
		})
	}
	return resp
}

func ToOwnerBookingsResponse(bookings []*domain.BookingDetails) OwnerBookingsResponse {
	resp := OwnerBookingsResponse{Bookings: make([]OwnerBookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		item := OwnerBookingResponse{BookingResponse: ToBookingResponse(&b.Booking)}
		if b.User != nil {
			u := ToUserSummaryResponse(*b.User)
			item.User = &u
		}
		resp.Bookings = append(resp.Bookings, item)
	}
	return resp
}

func ToGuestBookingsResponse(bookings []*domain.BookingDetails) GuestBookingsResponse {
	resp := GuestBookingsResponse{Bookings: make([]GuestBookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, GuestBookingResponse{
			SpotID:    b.SpotID,
			StartDate: domain.FormatDate(b.StartDate),
			EndDate:   domain.FormatDate(b.EndDate),
		})
	}
	return resp
}

// Reviews

type ReviewResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	SpotID    string `json:"spotId"`
	Review    string `json:"review"`
	Stars     int    `json:"stars"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type ReviewImageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type ReviewDetailsResponse struct {
	ReviewResponse
	User         UserSummaryResponse   `json:"User"`
	Spot         *SpotSummaryResponse  `json:"Spot,omitempty"`
	ReviewImages []ReviewImageResponse `json:"ReviewImages"`
}

type ReviewListResponse struct {
	Reviews []ReviewDetailsResponse `json:"Reviews"`
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		SpotID:    r.SpotID,
		Review:    r.Text,
		Stars:     r.Stars,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToReviewImageResponse(img *domain.Image) ReviewImageResponse {
	return ReviewImageResponse{ID: img.ID, URL: img.URL}
}

func ToReviewListResponse(reviews []*domain.ReviewDetails) ReviewListResponse {
	resp := ReviewListResponse{Reviews: make([]ReviewDetailsResponse, 0, len(reviews))}
	for _, r := range reviews {
		images := make([]ReviewImageResponse, 0, len(r.Images))
		for i := range r.Images {
			images = append(images, ToReviewImageResponse(&r.Images[i]))
		}

		resp.Reviews = append(resp.Reviews, ReviewDetailsResponse{
			ReviewResponse: ToReviewResponse(&r.Review),
			User:           ToUserSummaryResponse(r.User),
			Spot:           ToSpotSummaryResponse(r.Spot),
			ReviewImages:   images,
		})
	}
	return resp
}
