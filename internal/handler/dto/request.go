package dto

import (
	"github.com/stpnv0/StayBooker/internal/domain"
)

type CreateUserRequest struct {
	Username       string `json:"username"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegramChatId"`
}

func (r CreateUserRequest) ToInput() domain.CreateUserInput {
	return domain.CreateUserInput{
		Username:       r.Username,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		TelegramChatID: r.TelegramChatID,
	}
}

type SpotRequest struct {
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (r SpotRequest) ToInput() domain.SpotInput {
	return domain.SpotInput{
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		Country:     r.Country,
		Lat:         r.Lat,
		Lng:         r.Lng,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

type ImageRequest struct {
	URL     string `json:"url"`
	Preview bool   `json:"preview"`
}

func (r ImageRequest) ToInput() domain.ImageInput {
	return domain.ImageInput{URL: r.URL, Preview: r.Preview}
}

type ReviewRequest struct {
	Review string `json:"review"`
	Stars  int    `json:"stars"`
}

func (r ReviewRequest) ToInput() domain.ReviewInput {
	return domain.ReviewInput{Text: r.Review, Stars: r.Stars}
}

type BookingRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// DateRange parses both dates. Ordering and availability are left to the booking service.
func (r BookingRequest) DateRange() (domain.DateRange, error) {
	fields := map[string]string{}

	start, err := domain.ParseDate(r.StartDate)
	if err != nil {
		fields["startDate"] = "startDate must be a YYYY-MM-DD date"
	}

	end, err := domain.ParseDate(r.EndDate)
	if err != nil {
		fields["endDate"] = "endDate must be a YYYY-MM-DD date"
	}

	if len(fields) > 0 {
		return domain.DateRange{}, &domain.FieldError{Err: domain.ErrValidation, Fields: fields}
	}

	return domain.NewDateRange(start, end), nil
}
