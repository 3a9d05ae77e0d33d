package dto

import "time"

type BulkListingActionRequestDTO struct {
	ListingIDs []int  `json:"listing_ids" validate:"required"`
	Action     string `json:"action" example:"suspend"`
}

type BulkActionResponseDTO struct {
	Affected int `json:"affected"`
}

type BroadcastRequestDTO struct {
	Body string `json:"body" validate:"required"`
}

type BroadcastResponseDTO struct {
	Recipients int `json:"recipients"`
}

type RiskEvaluationResponseDTO struct {
	ProviderID       int  `json:"provider_id"`
	TotalBookings    int  `json:"total_bookings"`
	DisputedBookings int  `json:"disputed_bookings"`
	Flagged          bool `json:"flagged"`
	ListingsAffected int  `json:"listings_affected"`
}

type SuspendUserRequestDTO struct {
	Suspended bool `json:"suspended"`
}

type AuditLogResponseDTO struct {
	ID         int       `json:"id"`
	AdminID    int       `json:"admin_id"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   int       `json:"target_id"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}
