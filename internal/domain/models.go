package domain

import (
	"time"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
)

const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Suspended    bool      `db:"suspended"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	KYCPending  = "pending"
	KYCApproved = "approved"
	KYCRejected = "rejected"
)

type ProviderProfile struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	BusinessName    string    `db:"business_name"`
	GSTRegistered   bool      `db:"gst_registered"`
	PayoutCardLast4 string    `db:"payout_card_last4"`
	KYCStatus       string    `db:"kyc_status"`
	CreatedAt       time.Time `db:"created_at"`
}

type Listing struct {
	ID          int         `db:"id"`
	ProviderID  int         `db:"provider_id"`
	Title       string      `db:"title"`
	Description string      `db:"description"`
	Category    string      `db:"category"`
	Price       money.Cents `db:"price"`
	Active      bool        `db:"active"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

type Booking struct {
	ID              int         `db:"id"`
	Reference       string      `db:"reference"`
	ListingID       int         `db:"listing_id"`
	CustomerID      int         `db:"customer_id"`
	ProviderID      int         `db:"provider_id"`
	Status          string      `db:"status"`
	Price           money.Cents `db:"price"`
	ChargesGST      bool        `db:"charges_gst"`
	RefundedAmount  money.Cents `db:"refunded_amount"`
	PaymentIntentID *string     `db:"payment_intent_id"`
	ScheduledAt     time.Time   `db:"scheduled_at"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"`
}

type Message struct {
	ID        int       `db:"id"`
	BookingID int       `db:"booking_id"`
	SenderID  int       `db:"sender_id"`
	Body      string    `db:"body"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

type Favorite struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	ListingID int       `db:"listing_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Notification struct {
	ID          int        `db:"id"`
	UserID      int        `db:"user_id"`
	Kind        string     `db:"kind"`
	Body        string     `db:"body"`
	Read        bool       `db:"read"`
	DeliveredAt *time.Time `db:"delivered_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

// Earning caches the money split recorded at the moment a booking is paid,
// so receipts and summaries do not depend on later rate changes.
type Earning struct {
	ID          int         `db:"id"`
	BookingID   int         `db:"booking_id"`
	ProviderID  int         `db:"provider_id"`
	Gross       money.Cents `db:"gross"`
	PlatformFee money.Cents `db:"platform_fee"`
	GSTAmount   money.Cents `db:"gst_amount"`
	Net         money.Cents `db:"net"`
	Refunded    money.Cents `db:"refunded"`
	CreatedAt   time.Time   `db:"created_at"`
}

type Payout struct {
	ID          int         `db:"id"`
	ProviderID  int         `db:"provider_id"`
	Amount      money.Cents `db:"amount"`
	ProcessedAt time.Time   `db:"processed_at"`
}

type AuditLog struct {
	ID         int       `db:"id"`
	AdminID    int       `db:"admin_id"`
	Action     string    `db:"action"`
	TargetType string    `db:"target_type"`
	TargetID   int       `db:"target_id"`
	Detail     string    `db:"detail"`
	CreatedAt  time.Time `db:"created_at"`
}
