package dto

type CreateListingRequestDTO struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Category     string `json:"category" validate:"required"`
	PriceInCents int64  `json:"price_in_cents" example:"10000"`
}

type ListingResponseDTO struct {
	ID           int    `json:"id"`
	ProviderID   int    `json:"provider_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	PriceInCents int64  `json:"price_in_cents"`
	Active       bool   `json:"active"`
}
