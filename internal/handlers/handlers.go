package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/thefishingvault-bot/verial-services-sub005/docs"
	adminhandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/admin"
	authhandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/auth"
	bookinghandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/bookings"
	earninghandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/earnings"
	favoritehandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/favorites"
	listinghandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/listings"
	messagehandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/messages"
	notificationhandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/notifications"
	providerhandlers "github.com/thefishingvault-bot/verial-services-sub005/internal/handlers/providers"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/metrics"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ProviderHandler interface {
	Onboard(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type ListingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
}

type BookingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Decline(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Dispute(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	Totals(w http.ResponseWriter, r *http.Request)
}

type MessageHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
}

type FavoriteHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type EarningHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	RequestPayout(w http.ResponseWriter, r *http.Request)
	GetPayouts(w http.ResponseWriter, r *http.Request)
	Receipt(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	BulkListingAction(w http.ResponseWriter, r *http.Request)
	DecideKYC(w http.ResponseWriter, r *http.Request)
	EvaluateRisk(w http.ResponseWriter, r *http.Request)
	Broadcast(w http.ResponseWriter, r *http.Request)
	SuspendUser(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
	ListAuditLogs(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	ProviderHandler     ProviderHandler
	ListingHandler      ListingHandler
	BookingHandler      BookingHandler
	MessageHandler      MessageHandler
	FavoriteHandler     FavoriteHandler
	NotificationHandler NotificationHandler
	EarningHandler      EarningHandler
	AdminHandler        AdminHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		ProviderHandler:     providerhandlers.New(s.ProviderService),
		ListingHandler:      listinghandlers.New(s.ListingService),
		BookingHandler:      bookinghandlers.New(s.BookingService),
		MessageHandler:      messagehandlers.New(s.MessageService),
		FavoriteHandler:     favoritehandlers.New(s.FavoriteService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		EarningHandler:      earninghandlers.New(s.EarningService, s.ReportService),
		AdminHandler:        adminhandlers.New(s.AdminService, s.AdminBookingService),
		jwtService:          s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	metrics.Register()

	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metricsMiddleware,
	)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))

			r.Route("/providers", func(r chi.Router) {
				r.With(auth.RequireRole(domain.RoleProvider)).Post("/onboard", h.ProviderHandler.Onboard)
				r.With(auth.RequireRole(domain.RoleProvider)).Get("/me", h.ProviderHandler.GetProfile)
			})

			r.Route("/listings", func(r chi.Router) {
				r.Get("/", h.ListingHandler.Search)
				r.With(auth.RequireRole(domain.RoleProvider)).Post("/", h.ListingHandler.Create)
				r.With(auth.RequireRole(domain.RoleProvider)).Get("/mine", h.ListingHandler.Mine)
				r.Get("/{id}", h.ListingHandler.Get)
				r.With(auth.RequireRole(domain.RoleProvider)).Put("/{id}", h.ListingHandler.Update)
			})

			r.Route("/bookings", func(r chi.Router) {
				r.With(auth.RequireRole(domain.RoleCustomer)).Post("/", h.BookingHandler.Create)
				r.Get("/", h.BookingHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.BookingHandler.Get)
					r.Get("/totals", h.BookingHandler.Totals)
					r.Get("/receipt", h.EarningHandler.Receipt)
					r.With(auth.RequireRole(domain.RoleProvider)).Post("/accept", h.BookingHandler.Accept)
					r.With(auth.RequireRole(domain.RoleProvider)).Post("/decline", h.BookingHandler.Decline)
					r.With(auth.RequireRole(domain.RoleProvider)).Post("/complete", h.BookingHandler.Complete)
					r.Post("/cancel", h.BookingHandler.Cancel)
					r.With(auth.RequireRole(domain.RoleCustomer)).Post("/dispute", h.BookingHandler.Dispute)
					r.With(auth.RequireRole(domain.RoleCustomer)).Post("/pay", h.BookingHandler.Pay)
					r.Route("/messages", func(r chi.Router) {
						r.Get("/", h.MessageHandler.List)
						r.Post("/", h.MessageHandler.Send)
						r.Get("/unread", h.MessageHandler.UnreadCount)
					})
				})
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", h.FavoriteHandler.List)
				r.Post("/{listingID}", h.FavoriteHandler.Add)
				r.Delete("/{listingID}", h.FavoriteHandler.Remove)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.List)
				r.Post("/{id}/read", h.NotificationHandler.MarkRead)
			})

			r.Route("/earnings", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleProvider))
				r.Get("/summary", h.EarningHandler.GetSummary)
				r.Get("/export", h.EarningHandler.Export)
				r.Post("/payouts", h.EarningHandler.RequestPayout)
				r.Get("/payouts", h.EarningHandler.GetPayouts)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleAdmin))
				r.Post("/listings/bulk", h.AdminHandler.BulkListingAction)
				r.Post("/providers/{userID}/kyc", h.AdminHandler.DecideKYC)
				r.Post("/providers/{userID}/risk", h.AdminHandler.EvaluateRisk)
				r.Post("/broadcast", h.AdminHandler.Broadcast)
				r.Post("/users/{id}/suspend", h.AdminHandler.SuspendUser)
				r.Post("/bookings/{id}/refund", h.AdminHandler.Refund)
				r.Get("/audit-logs", h.AdminHandler.ListAuditLogs)
			})
		})
	})

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTP(route, fmt.Sprintf("%dxx", rec.status/100))
	})
}
