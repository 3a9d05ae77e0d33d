package service

import (
	"github.com/thefishingvault-bot/verial-services-sub005/internal/config"
	adminhandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/admin"
	authhandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/auth"
	bookinghandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/bookings"
	earninghandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/earnings"
	favoritehandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/favorites"
	listinghandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/listings"
	messagehandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/messages"
	notificationhandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/notifications"
	providerhandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/providers"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/payments"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/repo"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/adminservice"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/authservice"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/bookingservice"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/earningservice"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/favoriteservice"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/listingservice"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/messageservice"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/notificationservice"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/providerservice"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/reportservice"
	pkgauth "github.com/thefishingvault-bot/verial-services-sub005/pkg/auth"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/clients"
)

type Services struct {
	AuthService         authhandlers.Service
	ProviderService     providerhandlers.Service
	ListingService      listinghandlers.Service
	BookingService      bookinghandlers.Service
	MessageService      messagehandlers.Service
	FavoriteService     favoritehandlers.Service
	NotificationService notificationhandlers.Service
	EarningService      earninghandlers.Service
	ReportService       earninghandlers.ReportService
	AdminService        adminhandlers.Service
	AdminBookingService adminhandlers.BookingService

	// BookingMarker is consumed by the payments reconciler only.
	BookingMarker payments.BookingMarker

	JWTService pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, repo *repo.Repositories, httpClient clients.HTTPClientI) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	rates := cfg.Rates()

	notificationService := notificationservice.New(repo.NotificationRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	providerService := providerservice.New(repo.ProviderRepo, repo.BookingRepo)
	listingService := listingservice.New(repo.ListingRepo, repo.ProviderRepo)
	earningService := earningservice.New(repo.EarningRepo, repo.PayoutRepo, rates)
	paymentsClient := payments.NewClient(cfg.PaymentsAddress, httpClient)
	bookingService := bookingservice.New(
		repo.BookingRepo,
		repo.ListingRepo,
		repo.ProviderRepo,
		earningService,
		paymentsClient,
		notificationService,
		rates,
	)
	messageService := messageservice.New(repo.MessageRepo, repo.BookingRepo)
	favoriteService := favoriteservice.New(repo.FavoriteRepo, repo.ListingRepo)
	reportService := reportservice.New(repo.BookingRepo, repo.EarningRepo, rates)
	adminService := adminservice.New(
		repo.ListingRepo,
		repo.UserRepo,
		repo.BookingRepo,
		repo.AuditRepo,
		providerService,
		notificationService,
		adminservice.RiskRule{
			MinBookings:   cfg.RiskMinBookings,
			MaxDisputePct: cfg.RiskDisputePct,
		},
	)

	return &Services{
		AuthService:         authService,
		ProviderService:     providerService,
		ListingService:      listingService,
		BookingService:      bookingService,
		MessageService:      messageService,
		FavoriteService:     favoriteService,
		NotificationService: notificationService,
		EarningService:      earningService,
		ReportService:       reportService,
		AdminService:        adminService,
		AdminBookingService: bookingService,
		BookingMarker:       bookingService,
		JWTService:          jwtService,
	}
}
