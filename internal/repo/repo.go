package repo

import (
	"github.com/thefishingvault-bot/verial-services-sub005/internal/pg"
	auditrepo "github.com/thefishingvault-bot/verial-services-sub005/internal/repo/audit-repo"
	bookingrepo "github.com/thefishingvault-bot/verial-services-sub005/internal/repo/booking-repo"
	earningrepo "github.com/thefishingvault-bot/verial-services-sub005/internal/repo/earning-repo"
	favoriterepo "github.com/thefishingvault-bot/verial-services-sub005/internal/repo/favorite-repo"
	listingrepo "github.com/thefishingvault-bot/verial-services-sub005/internal/repo/listing-repo"
	messagerepo "github.com/thefishingvault-bot/verial-services-sub005/internal/repo/message-repo"
	notificationrepo "github.com/thefishingvault-bot/verial-services-sub005/internal/repo/notification-repo"
	payoutrepo "github.com/thefishingvault-bot/verial-services-sub005/internal/repo/payout-repo"
	providerrepo "github.com/thefishingvault-bot/verial-services-sub005/internal/repo/provider-repo"
	userrepo "github.com/thefishingvault-bot/verial-services-sub005/internal/repo/user-repo"
)

// Repositories holds the concrete repositories; services narrow them to the
// interfaces they declare.
type Repositories struct {
	UserRepo         *userrepo.Repository
	ProviderRepo     *providerrepo.Repository
	ListingRepo      *listingrepo.Repository
	BookingRepo      *bookingrepo.Repository
	EarningRepo      *earningrepo.Repository
	PayoutRepo       *payoutrepo.Repository
	MessageRepo      *messagerepo.Repository
	FavoriteRepo     *favoriterepo.Repository
	NotificationRepo *notificationrepo.Repository
	AuditRepo        *auditrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		ProviderRepo:     providerrepo.New(conn),
		ListingRepo:      listingrepo.New(conn),
		BookingRepo:      bookingrepo.New(conn, txManager),
		EarningRepo:      earningrepo.New(conn, txManager),
		PayoutRepo:       payoutrepo.New(conn),
		MessageRepo:      messagerepo.New(conn),
		FavoriteRepo:     favoriterepo.New(conn),
		NotificationRepo: notificationrepo.New(conn, txManager),
		AuditRepo:        auditrepo.New(conn),
	}
}
