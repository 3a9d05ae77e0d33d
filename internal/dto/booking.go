package dto

import "time"

type CreateBookingRequestDTO struct {
	ListingID   int       `json:"listing_id" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" example:"2025-03-01T10:00:00+13:00"`
}

type BookingResponseDTO struct {
	ID             int       `json:"id"`
	Reference      string    `json:"reference" example:"7f6c873d-6c1d-4a3e-9c26-2a1f1a3f5b11"`
	ListingID      int       `json:"listing_id"`
	CustomerID     int       `json:"customer_id"`
	ProviderID     int       `json:"provider_id"`
	Status         string    `json:"status" example:"pending"`
	PriceInCents   int64     `json:"price_in_cents"`
	ChargesGST     bool      `json:"charges_gst"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	AllowedActions []string  `json:"allowed_actions"`
}

type BookingTotalsResponseDTO struct {
	Gross          int64 `json:"gross"`
	PlatformFee    int64 `json:"platform_fee"`
	GSTAmount      int64 `json:"gst_amount"`
	NetToProvider  int64 `json:"net_to_provider"`
	TotalPaid      int64 `json:"total_paid"`
	RefundedAmount int64 `json:"refunded_amount"`
}

type PayBookingResponseDTO struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
}

type RefundBookingRequestDTO struct {
	AmountInCents int64 `json:"amount_in_cents" example:"5000"`
}
