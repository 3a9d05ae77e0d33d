package bookingservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/booking"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/metrics"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/payments"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
	Save(ctx context.Context, b *domain.Booking) error
	FindByCustomerID(ctx context.Context, customerID int) ([]domain.Booking, error)
	FindByProviderID(ctx context.Context, providerID int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	SetPaymentIntent(ctx context.Context, id int, intentID string) error
	AddRefund(ctx context.Context, id int, amount money.Cents, status string) error
}

type ListingRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Listing, error)
}

type ProviderRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.ProviderProfile, error)
}

type EarningsRecorder interface {
	RecordEarning(ctx context.Context, b *domain.Booking) error
	AddRefund(ctx context.Context, bookingID int, amount money.Cents) error
}

type PaymentsClient interface {
	CreateIntent(amount money.Cents, currency, reference string) (*payments.Intent, error)
	CreateRefund(intentID string, amount money.Cents) (*payments.Refund, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int, kind, body string) error
}

type Service struct {
	bookingRepo  Repo
	listingRepo  ListingRepo
	providerRepo ProviderRepo
	earnings     EarningsRecorder
	payments     PaymentsClient
	notifier     Notifier
	rates        money.Rates
}

func New(
	bookingRepo Repo,
	listingRepo ListingRepo,
	providerRepo ProviderRepo,
	earnings EarningsRecorder,
	paymentsClient PaymentsClient,
	notifier Notifier,
	rates money.Rates,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		listingRepo:  listingRepo,
		providerRepo: providerRepo,
		earnings:     earnings,
		payments:     paymentsClient,
		notifier:     notifier,
		rates:        rates,
	}
}

const currency = "nzd"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrListingNotFound   = errors.New("listing not found")
	ErrListingInactive   = errors.New("listing is not active")
	ErrNotParticipant    = errors.New("user is not a party to this booking")
	ErrOwnListing        = errors.New("providers can't book their own listing")
	ErrPaymentNotStarted = errors.New("no payment intent on booking")
)

// Create opens a booking in pending with the listing price snapshotted, so
// later listing edits don't change what the customer owes.
func (s *Service) Create(ctx context.Context, customerID, listingID int, scheduledAt time.Time) (*domain.Booking, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if !listing.Active {
		return nil, ErrListingInactive
	}
	if listing.ProviderID == customerID {
		return nil, ErrOwnListing
	}

	chargesGST := false
	profile, err := s.providerRepo.FindByUserID(ctx, listing.ProviderID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		chargesGST = profile.GSTRegistered
	}

	b := &domain.Booking{
		Reference:   uuid.NewString(),
		ListingID:   listing.ID,
		CustomerID:  customerID,
		ProviderID:  listing.ProviderID,
		Status:      string(booking.StatusPending),
		Price:       listing.Price,
		ChargesGST:  chargesGST,
		ScheduledAt: scheduledAt,
	}
	if err := s.bookingRepo.Save(ctx, b); err != nil {
		zap.L().Error("can't save booking", zap.Error(err))
		return nil, err
	}
	metrics.IncBookingTransition(b.Status)

	s.notify(ctx, b.ProviderID, "booking_requested",
		fmt.Sprintf("New booking request %s for listing %d", b.Reference, b.ListingID))
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, requesterID int, role string, bookingID int) (*domain.Booking, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if role != domain.RoleAdmin && b.CustomerID != requesterID && b.ProviderID != requesterID {
		return nil, ErrNotParticipant
	}
	return b, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int, role string) ([]domain.Booking, error) {
	if role == domain.RoleProvider {
		return s.bookingRepo.FindByProviderID(ctx, userID)
	}
	return s.bookingRepo.FindByCustomerID(ctx, userID)
}

func (s *Service) Accept(ctx context.Context, providerID, bookingID int) (*domain.Booking, error) {
	return s.transitionAs(ctx, bookingID, booking.StatusAccepted, func(b *domain.Booking) error {
		if b.ProviderID != providerID {
			return ErrNotParticipant
		}
		return nil
	})
}

func (s *Service) Decline(ctx context.Context, providerID, bookingID int) (*domain.Booking, error) {
	return s.transitionAs(ctx, bookingID, booking.StatusDeclined, func(b *domain.Booking) error {
		if b.ProviderID != providerID {
			return ErrNotParticipant
		}
		return nil
	})
}

// Cancel picks the cancellation branch from the actor's relation to the
// booking: customers cancel to canceled_customer, providers to
// canceled_provider.
func (s *Service) Cancel(ctx context.Context, actorID, bookingID int) (*domain.Booking, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	var next booking.Status
	switch actorID {
	case b.CustomerID:
		next = booking.StatusCanceledCustomer
	case b.ProviderID:
		next = booking.StatusCanceledProvider
	default:
		return nil, ErrNotParticipant
	}
	return s.apply(ctx, b, next)
}

func (s *Service) Complete(ctx context.Context, providerID, bookingID int) (*domain.Booking, error) {
	return s.transitionAs(ctx, bookingID, booking.StatusCompleted, func(b *domain.Booking) error {
		if b.ProviderID != providerID {
			return ErrNotParticipant
		}
		return nil
	})
}

func (s *Service) Dispute(ctx context.Context, customerID, bookingID int) (*domain.Booking, error) {
	return s.transitionAs(ctx, bookingID, booking.StatusDisputed, func(b *domain.Booking) error {
		if b.CustomerID != customerID {
			return ErrNotParticipant
		}
		return nil
	})
}

// InitiatePayment opens a payment intent with the processor for an accepted
// booking. The paid transition itself is applied by the reconciler once the
// processor reports the intent succeeded.
func (s *Service) InitiatePayment(ctx context.Context, customerID, bookingID int) (*payments.Intent, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.CustomerID != customerID {
		return nil, ErrNotParticipant
	}
	if err := booking.AssertTransition(b.Status, booking.StatusPaid); err != nil {
		return nil, err
	}

	intent, err := s.payments.CreateIntent(b.Price, currency, b.Reference)
	if err != nil {
		zap.L().Error("can't create payment intent", zap.Error(err))
		return nil, err
	}
	if err := s.bookingRepo.SetPaymentIntent(ctx, b.ID, intent.ID); err != nil {
		return nil, err
	}
	return intent, nil
}

// MarkPaid applies the paid transition and records the cached money split.
// Called by the payments reconciler, never from a handler.
func (s *Service) MarkPaid(ctx context.Context, bookingID int) error {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBookingNotFound
	}
	if b.PaymentIntentID == nil {
		return ErrPaymentNotStarted
	}

	if _, err := s.apply(ctx, b, booking.StatusPaid); err != nil {
		return err
	}

	if err := s.earnings.RecordEarning(ctx, b); err != nil {
		zap.L().Error("can't record earning", zap.Error(err), zap.Int("bookingID", b.ID))
		return err
	}
	s.notify(ctx, b.CustomerID, "booking_paid",
		fmt.Sprintf("Payment received for booking %s", b.Reference))
	return nil
}

// Refund refunds part or all of a paid or disputed booking through the
// processor. The refund is applied against the provider net only; collected
// platform fee and GST stay as charged.
func (s *Service) Refund(ctx context.Context, bookingID int, amount money.Cents) (*domain.Booking, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.PaymentIntentID == nil {
		return nil, ErrPaymentNotStarted
	}
	if amount <= 0 || amount > b.Price-b.RefundedAmount {
		return nil, fmt.Errorf("%w: refund amount %d", money.ErrNegativeValue, amount)
	}
	if err := booking.AssertTransition(b.Status, booking.StatusRefunded); err != nil {
		return nil, err
	}

	if _, err := s.payments.CreateRefund(*b.PaymentIntentID, amount); err != nil {
		zap.L().Error("can't create refund", zap.Error(err))
		return nil, err
	}
	if err := s.bookingRepo.AddRefund(ctx, b.ID, amount, string(booking.StatusRefunded)); err != nil {
		return nil, err
	}
	if err := s.earnings.AddRefund(ctx, b.ID, amount); err != nil {
		return nil, err
	}
	metrics.IncBookingTransition(string(booking.StatusRefunded))

	b.Status = string(booking.StatusRefunded)
	b.RefundedAmount += amount
	s.notify(ctx, b.CustomerID, "booking_refunded",
		fmt.Sprintf("Refund of %d issued for booking %s", amount, b.Reference))
	s.notify(ctx, b.ProviderID, "booking_refunded",
		fmt.Sprintf("Booking %s was refunded", b.Reference))
	return b, nil
}

// Totals recomputes the customer/provider money view of a booking.
func (s *Service) Totals(ctx context.Context, requesterID int, role string, bookingID int) (*money.BookingTotals, error) {
	b, err := s.GetByID(ctx, requesterID, role, bookingID)
	if err != nil {
		return nil, err
	}
	totals, err := money.CalculateBookingTotals(money.BookingTotalsInput{
		Price:          b.Price,
		ChargesGST:     b.ChargesGST,
		RefundedAmount: b.RefundedAmount,
		Rates:          s.rates,
	})
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (s *Service) transitionAs(ctx context.Context, bookingID int, next booking.Status, authorize func(*domain.Booking) error) (*domain.Booking, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if err := authorize(b); err != nil {
		return nil, err
	}
	return s.apply(ctx, b, next)
}

// apply is the single write path for status changes; every transition is
// validated against the state machine first.
func (s *Service) apply(ctx context.Context, b *domain.Booking, next booking.Status) (*domain.Booking, error) {
	if err := booking.AssertTransition(b.Status, next); err != nil {
		zap.L().Info("rejected booking transition",
			zap.Int("bookingID", b.ID),
			zap.String("from", b.Status),
			zap.String("to", string(next)))
		return nil, err
	}
	if err := s.bookingRepo.UpdateStatus(ctx, b.ID, string(next)); err != nil {
		return nil, err
	}
	metrics.IncBookingTransition(string(next))
	b.Status = string(next)

	s.notify(ctx, b.CustomerID, "booking_status",
		fmt.Sprintf("Booking %s is now %s", b.Reference, next))
	return b, nil
}

func (s *Service) notify(ctx context.Context, userID int, kind, body string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, kind, body); err != nil {
		zap.L().Error("can't enqueue notification", zap.Error(err))
	}
}
