package dto

import "time"

type NotificationResponseDTO struct {
	ID        int       `json:"id"`
	Kind      string    `json:"kind" example:"booking_status"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
