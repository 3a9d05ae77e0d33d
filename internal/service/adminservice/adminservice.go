package adminservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
)

type ListingRepo interface {
	SetActive(ctx context.Context, ids []int, active bool) (int, error)
	SetActiveByProvider(ctx context.Context, providerID int, active bool) (int, error)
}

type UserRepo interface {
	ListActiveIDs(ctx context.Context) ([]int, error)
	SetSuspended(ctx context.Context, userID int, suspended bool) error
}

type BookingRepo interface {
	CountsForProvider(ctx context.Context, providerID int) (total, completed, disputed int, err error)
}

type AuditRepo interface {
	Create(ctx context.Context, entry *domain.AuditLog) (*domain.AuditLog, error)
	List(ctx context.Context, limit uint32) ([]domain.AuditLog, error)
}

type ProviderService interface {
	SetKYCStatus(ctx context.Context, userID int, status string) error
}

type Notifier interface {
	Notify(ctx context.Context, userID int, kind, body string) error
	NotifyMany(ctx context.Context, userIDs []int, kind, body string) error
}

// RiskRule flags providers whose dispute share crosses the threshold once
// they have enough history to judge.
type RiskRule struct {
	MinBookings   int
	MaxDisputePct int
}

type Service struct {
	listingRepo ListingRepo
	userRepo    UserRepo
	bookingRepo BookingRepo
	auditRepo   AuditRepo
	providers   ProviderService
	notifier    Notifier
	riskRule    RiskRule
}

func New(
	listingRepo ListingRepo,
	userRepo UserRepo,
	bookingRepo BookingRepo,
	auditRepo AuditRepo,
	providers ProviderService,
	notifier Notifier,
	riskRule RiskRule,
) *Service {
	return &Service{
		listingRepo: listingRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		auditRepo:   auditRepo,
		providers:   providers,
		notifier:    notifier,
		riskRule:    riskRule,
	}
}

var (
	ErrUnknownAction  = errors.New("unknown bulk action")
	ErrEmptySelection = errors.New("no listings selected")
)

const (
	ActionSuspend = "suspend"
	ActionRestore = "restore"
)

// BulkListingAction suspends or restores a set of listings in one go.
func (s *Service) BulkListingAction(ctx context.Context, adminID int, listingIDs []int, action string) (int, error) {
	if len(listingIDs) == 0 {
		return 0, ErrEmptySelection
	}

	var active bool
	switch action {
	case ActionSuspend:
		active = false
	case ActionRestore:
		active = true
	default:
		return 0, ErrUnknownAction
	}

	affected, err := s.listingRepo.SetActive(ctx, listingIDs, active)
	if err != nil {
		zap.L().Error("bulk listing action failed", zap.Error(err))
		return 0, err
	}

	s.audit(ctx, adminID, "listings_"+action, "listing", 0,
		fmt.Sprintf("%s %d listings", action, affected))
	return affected, nil
}

type RiskEvaluation struct {
	ProviderID       int
	TotalBookings    int
	DisputedBookings int
	Flagged          bool
	ListingsAffected int
}

// EvaluateProviderRisk applies the dispute-ratio rule and, when it fires,
// suspends the provider's listings.
func (s *Service) EvaluateProviderRisk(ctx context.Context, adminID, providerID int) (*RiskEvaluation, error) {
	total, _, disputed, err := s.bookingRepo.CountsForProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	eval := &RiskEvaluation{
		ProviderID:       providerID,
		TotalBookings:    total,
		DisputedBookings: disputed,
	}
	if total < s.riskRule.MinBookings {
		return eval, nil
	}
	if disputed*100 < total*s.riskRule.MaxDisputePct {
		return eval, nil
	}

	eval.Flagged = true
	affected, err := s.listingRepo.SetActiveByProvider(ctx, providerID, false)
	if err != nil {
		zap.L().Error("can't suspend provider listings", zap.Error(err))
		return nil, err
	}
	eval.ListingsAffected = affected

	s.audit(ctx, adminID, "risk_flagged", "provider", providerID,
		fmt.Sprintf("%d/%d bookings disputed, %d listings suspended", disputed, total, affected))
	if err := s.notifier.Notify(ctx, providerID, "risk_flagged",
		"Your listings were suspended pending review"); err != nil {
		zap.L().Error("can't notify flagged provider", zap.Error(err))
	}
	return eval, nil
}

// Broadcast delivers an announcement to every active user.
func (s *Service) Broadcast(ctx context.Context, adminID int, body string) (int, error) {
	userIDs, err := s.userRepo.ListActiveIDs(ctx)
	if err != nil {
		return 0, err
	}
	if len(userIDs) == 0 {
		return 0, nil
	}

	if err := s.notifier.NotifyMany(ctx, userIDs, "broadcast", body); err != nil {
		zap.L().Error("broadcast failed", zap.Error(err))
		return 0, err
	}

	s.audit(ctx, adminID, "broadcast", "user", 0,
		fmt.Sprintf("broadcast to %d users", len(userIDs)))
	return len(userIDs), nil
}

// DecideKYC records the admin's onboarding decision.
func (s *Service) DecideKYC(ctx context.Context, adminID, providerUserID int, approve bool, reason string) error {
	status := domain.KYCRejected
	kind := "kyc_rejected"
	if approve {
		status = domain.KYCApproved
		kind = "kyc_approved"
	}

	if err := s.providers.SetKYCStatus(ctx, providerUserID, status); err != nil {
		return err
	}

	s.audit(ctx, adminID, kind, "provider", providerUserID, reason)
	if err := s.notifier.Notify(ctx, providerUserID, kind,
		fmt.Sprintf("Your verification was %s", status)); err != nil {
		zap.L().Error("can't notify provider of kyc decision", zap.Error(err))
	}
	return nil
}

func (s *Service) SuspendUser(ctx context.Context, adminID, userID int, suspended bool) error {
	if err := s.userRepo.SetSuspended(ctx, userID, suspended); err != nil {
		return err
	}
	action := "user_restored"
	if suspended {
		action = "user_suspended"
	}
	s.audit(ctx, adminID, action, "user", userID, "")
	return nil
}

func (s *Service) ListAuditLogs(ctx context.Context, limit uint32) ([]domain.AuditLog, error) {
	if limit == 0 || limit > 500 {
		limit = 100
	}
	return s.auditRepo.List(ctx, limit)
}

func (s *Service) audit(ctx context.Context, adminID int, action, targetType string, targetID int, detail string) {
	_, err := s.auditRepo.Create(ctx, &domain.AuditLog{
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Detail:     detail,
	})
	if err != nil {
		zap.L().Error("can't write audit log", zap.Error(err), zap.String("action", action))
	}
}
