package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}

type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CreateUserInput struct {
	Username       string `json:"username"       validate:"required,min=3,max=30"`
	FirstName      string `json:"firstName"      validate:"required,max=50"`
	LastName       string `json:"lastName"       validate:"required,max=50"`
	Email          string `json:"email"          validate:"required,email,max=256"`
	TelegramChatID *int64 `json:"telegramChatId"`
}
