package dto

type OnboardProviderRequestDTO struct {
	BusinessName  string `json:"business_name" validate:"required"`
	GSTRegistered bool   `json:"gst_registered"`
	PayoutCard    string `json:"payout_card" example:"4561261212345467"`
}

type ProviderProfileResponseDTO struct {
	BusinessName    string `json:"business_name"`
	GSTRegistered   bool   `json:"gst_registered"`
	PayoutCardLast4 string `json:"payout_card_last4"`
	KYCStatus       string `json:"kyc_status" example:"pending"`
	TrustScore      int    `json:"trust_score" example:"72"`
}

type KYCDecisionRequestDTO struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason,omitempty"`
}
