package earningservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
	earningrepo "github.com/thefishingvault-bot/verial-services-sub005/internal/repo/earning-repo"
)

type EarningRepo interface {
	Create(ctx context.Context, e *domain.Earning) (*domain.Earning, error)
	FindByBookingID(ctx context.Context, bookingID int) (*domain.Earning, error)
	FindByProviderID(ctx context.Context, providerID int) ([]domain.Earning, error)
	SummaryByProviderID(ctx context.Context, providerID int) (*earningrepo.Summary, error)
	AddRefund(ctx context.Context, bookingID int, amount money.Cents) error
}

type PayoutRepo interface {
	Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error)
	FindByProviderID(ctx context.Context, providerID int) ([]domain.Payout, error)
	TotalByProviderID(ctx context.Context, providerID int) (money.Cents, error)
}

type Service struct {
	earningRepo EarningRepo
	payoutRepo  PayoutRepo
	rates       money.Rates
}

func New(earningRepo EarningRepo, payoutRepo PayoutRepo, rates money.Rates) *Service {
	return &Service{
		earningRepo: earningRepo,
		payoutRepo:  payoutRepo,
		rates:       rates,
	}
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid payout amount")
)

// RecordEarning caches the money split for a just-paid booking. The split is
// computed once here; receipts and summaries read the cached row.
func (s *Service) RecordEarning(ctx context.Context, b *domain.Booking) error {
	earnings, err := money.CalculateEarnings(money.EarningsInput{
		Amount:     b.Price,
		ChargesGST: b.ChargesGST,
		Rates:      s.rates,
	})
	if err != nil {
		zap.L().Error("earnings computation failed", zap.Error(err), zap.Int("bookingID", b.ID))
		return err
	}

	_, err = s.earningRepo.Create(ctx, &domain.Earning{
		BookingID:   b.ID,
		ProviderID:  b.ProviderID,
		Gross:       earnings.GrossAmount,
		PlatformFee: earnings.PlatformFeeAmount,
		GSTAmount:   earnings.GSTAmount,
		Net:         earnings.NetAmount,
	})
	if err != nil {
		zap.L().Error("can't create earning", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) AddRefund(ctx context.Context, bookingID int, amount money.Cents) error {
	return s.earningRepo.AddRefund(ctx, bookingID, amount)
}

func (s *Service) GetByBookingID(ctx context.Context, bookingID int) (*domain.Earning, error) {
	return s.earningRepo.FindByBookingID(ctx, bookingID)
}

type Summary struct {
	Gross       money.Cents
	PlatformFee money.Cents
	GSTAmount   money.Cents
	Net         money.Cents
	Refunded    money.Cents
	Available   money.Cents
	PaidOut     money.Cents
}

// GetSummary aggregates a provider's lifetime figures. Available is what can
// still be paid out: net earnings minus refunds minus previous payouts.
func (s *Service) GetSummary(ctx context.Context, providerID int) (*Summary, error) {
	sums, err := s.earningRepo.SummaryByProviderID(ctx, providerID)
	if err != nil {
		zap.L().Error("failed to summarize earnings", zap.Error(err))
		return nil, err
	}
	paidOut, err := s.payoutRepo.TotalByProviderID(ctx, providerID)
	if err != nil {
		zap.L().Error("failed to total payouts", zap.Error(err))
		return nil, err
	}

	available := sums.Net - sums.Refunded - paidOut
	if available < 0 {
		available = 0
	}

	return &Summary{
		Gross:       sums.Gross,
		PlatformFee: sums.PlatformFee,
		GSTAmount:   sums.GSTAmount,
		Net:         sums.Net,
		Refunded:    sums.Refunded,
		Available:   available,
		PaidOut:     paidOut,
	}, nil
}

// RequestPayout moves part of the available balance into a payout record.
func (s *Service) RequestPayout(ctx context.Context, providerID int, amount money.Cents) (*domain.Payout, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	summary, err := s.GetSummary(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if summary.Available < amount {
		return nil, ErrInsufficientBalance
	}

	payout := &domain.Payout{
		ProviderID:  providerID,
		Amount:      amount,
		ProcessedAt: time.Now(),
	}
	created, err := s.payoutRepo.Create(ctx, payout)
	if err != nil {
		zap.L().Error("failed to create payout record", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetPayouts(ctx context.Context, providerID int) ([]domain.Payout, error) {
	payouts, err := s.payoutRepo.FindByProviderID(ctx, providerID)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}

func (s *Service) ListEarnings(ctx context.Context, providerID int) ([]domain.Earning, error) {
	return s.earningRepo.FindByProviderID(ctx, providerID)
}
