package dto

import "time"

type EarningsSummaryResponseDTO struct {
	GrossTotal       int64 `json:"gross_total"`
	PlatformFeeTotal int64 `json:"platform_fee_total"`
	GSTTotal         int64 `json:"gst_total"`
	NetTotal         int64 `json:"net_total"`
	RefundedTotal    int64 `json:"refunded_total"`
	Available        int64 `json:"available"`
	PaidOut          int64 `json:"paid_out"`
}

type PayoutRequestDTO struct {
	AmountInCents int64 `json:"amount_in_cents" example:"50000"`
}

type PayoutResponseDTO struct {
	AmountInCents int64     `json:"amount_in_cents"`
	ProcessedAt   time.Time `json:"processed_at"`
}

type ReceiptResponseDTO struct {
	ReceiptNumber  string    `json:"receipt_number" example:"rcpt-8e2f9a3b"`
	BookingRef     string    `json:"booking_ref"`
	IssuedAt       time.Time `json:"issued_at"`
	Gross          int64     `json:"gross"`
	PlatformFee    int64     `json:"platform_fee"`
	GSTAmount      int64     `json:"gst_amount"`
	NetToProvider  int64     `json:"net_to_provider"`
	TotalPaid      int64     `json:"total_paid"`
	RefundedAmount int64     `json:"refunded_amount"`
	GSTInclusive   bool      `json:"gst_inclusive"`
}
