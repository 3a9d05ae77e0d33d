package dto

import "time"

type SendMessageRequestDTO struct {
	Body string `json:"body" validate:"required"`
}

type MessageResponseDTO struct {
	ID        int       `json:"id"`
	BookingID int       `json:"booking_id"`
	SenderID  int       `json:"sender_id"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountResponseDTO struct {
	Unread int `json:"unread"`
}
