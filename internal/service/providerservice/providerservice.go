package providerservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/validate"
)

type Repo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.ProviderProfile, error)
	Create(ctx context.Context, profile *domain.ProviderProfile) (*domain.ProviderProfile, error)
	UpdateKYCStatus(ctx context.Context, userID int, status string) error
}

type BookingCounter interface {
	CountsForProvider(ctx context.Context, providerID int) (total, completed, disputed int, err error)
}

type Service struct {
	providerRepo Repo
	bookings     BookingCounter
}

func New(providerRepo Repo, bookings BookingCounter) *Service {
	return &Service{
		providerRepo: providerRepo,
		bookings:     bookings,
	}
}

var (
	ErrAlreadyOnboarded  = errors.New("provider already onboarded")
	ErrInvalidPayoutCard = errors.New("invalid payout card number")
	ErrProfileNotFound   = errors.New("provider profile not found")
)

type OnboardInput struct {
	BusinessName  string
	GSTRegistered bool
	PayoutCard    string
}

// Onboard creates the KYC profile for a provider. The payout card number is
// Luhn-checked and only its last four digits are retained.
func (s *Service) Onboard(ctx context.Context, userID int, in OnboardInput) (*domain.ProviderProfile, error) {
	existing, err := s.providerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyOnboarded
	}

	if len(in.PayoutCard) < 12 || !validate.IsLuhn(in.PayoutCard) {
		return nil, ErrInvalidPayoutCard
	}

	profile := &domain.ProviderProfile{
		UserID:          userID,
		BusinessName:    in.BusinessName,
		GSTRegistered:   in.GSTRegistered,
		PayoutCardLast4: in.PayoutCard[len(in.PayoutCard)-4:],
		KYCStatus:       domain.KYCPending,
	}
	created, err := s.providerRepo.Create(ctx, profile)
	if err != nil {
		zap.L().Error("can't create provider profile", zap.Error(err))
		return nil, err
	}

	zap.L().Info("provider onboarded", zap.Int("userID", userID))
	return created, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.ProviderProfile, error) {
	profile, err := s.providerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *Service) SetKYCStatus(ctx context.Context, userID int, status string) error {
	profile, err := s.providerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	return s.providerRepo.UpdateKYCStatus(ctx, userID, status)
}

// TrustScore aggregates booking history into a 0..100 score.
func (s *Service) TrustScore(ctx context.Context, userID int) (int, error) {
	profile, err := s.providerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return 0, ErrProfileNotFound
	}
	_, completed, disputed, err := s.bookings.CountsForProvider(ctx, userID)
	if err != nil {
		return 0, err
	}
	return computeTrustScore(completed, disputed, time.Since(profile.CreatedAt)), nil
}

// computeTrustScore starts from a neutral 50: completed bookings add up to
// 40 points, disputes subtract 10 each, account age adds up to 10.
func computeTrustScore(completed, disputed int, accountAge time.Duration) int {
	score := 50

	bonus := completed * 2
	if bonus > 40 {
		bonus = 40
	}
	score += bonus

	score -= disputed * 10

	ageMonths := int(accountAge.Hours() / (24 * 30))
	if ageMonths > 10 {
		ageMonths = 10
	}
	score += ageMonths

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
