package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/booking"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/dto"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/payments"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/bookingservice"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/auth"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, customerID, listingID int, scheduledAt time.Time) (*domain.Booking, error)
	GetByID(ctx context.Context, requesterID int, role string, bookingID int) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID int, role string) ([]domain.Booking, error)
	Accept(ctx context.Context, providerID, bookingID int) (*domain.Booking, error)
	Decline(ctx context.Context, providerID, bookingID int) (*domain.Booking, error)
	Cancel(ctx context.Context, actorID, bookingID int) (*domain.Booking, error)
	Complete(ctx context.Context, providerID, bookingID int) (*domain.Booking, error)
	Dispute(ctx context.Context, customerID, bookingID int) (*domain.Booking, error)
	InitiatePayment(ctx context.Context, customerID, bookingID int) (*payments.Intent, error)
	Totals(ctx context.Context, requesterID int, role string, bookingID int) (*money.BookingTotals, error)
}

type BookingHandler struct {
	bookingService Service
}

func New(bookingService Service) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// Create godoc
//
//	@Summary		Request a booking
//	@Description	Open a pending booking for a listing at the listing's current price
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBookingRequestDTO	true	"Booking request body"
//	@Success		200		{object}	dto.BookingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Listing not found"
//	@Failure		422		{object}	utils.Response	"Listing unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings [post]
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.bookingService.Create(r.Context(), userID, req.ListingID, req.ScheduledAt)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(b))
}

// Get godoc
//
//	@Summary		Get a booking
//	@Description	Visible to the booking's customer, its provider, and admins
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a party to the booking"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id} [get]
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)
	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	b, err := h.bookingService.GetByID(r.Context(), userID, role, bookingID)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(b))
}

// List godoc
//
//	@Summary		List own bookings
//	@Description	Customers see bookings they made, providers see bookings against their listings
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BookingResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings [get]
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	bookings, err := h.bookingService.ListForUser(r.Context(), userID, role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.BookingResponseDTO, len(bookings))
	for i := range bookings {
		response[i] = toDTO(&bookings[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Accept godoc
//
//	@Summary		Accept a booking
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the provider"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		409	{object}	utils.Response	"Transition not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/accept [post]
func (h *BookingHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.Accept)
}

// Decline godoc
//
//	@Summary		Decline a booking
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the provider"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		409	{object}	utils.Response	"Transition not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/decline [post]
func (h *BookingHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.Decline)
}

// Cancel godoc
//
//	@Summary		Cancel a booking
//	@Description	Either party may cancel before completion; the resulting status records who canceled
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a party to the booking"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		409	{object}	utils.Response	"Transition not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.Cancel)
}

// Complete godoc
//
//	@Summary		Mark a booking completed
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the provider"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		409	{object}	utils.Response	"Transition not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/complete [post]
func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.Complete)
}

// Dispute godoc
//
//	@Summary		Dispute a paid booking
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the customer"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		409	{object}	utils.Response	"Transition not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/dispute [post]
func (h *BookingHandler) Dispute(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.Dispute)
}

// Pay godoc
//
//	@Summary		Start payment for a booking
//	@Description	Opens a payment intent with the processor; the booking becomes paid once the processor confirms
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.PayBookingResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the customer"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		409	{object}	utils.Response	"Booking not payable"
//	@Failure		502	{object}	utils.Response	"Payments processor unavailable"
//	@Router			/api/bookings/{id}/pay [post]
func (h *BookingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	intent, err := h.bookingService.InitiatePayment(r.Context(), userID, bookingID)
	if err != nil {
		if errors.Is(err, payments.ErrProcessorUnavailable) {
			utils.RespondWithError(w, http.StatusBadGateway, "Payments processor unavailable")
			return
		}
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayBookingResponseDTO{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
	})
}

// Totals godoc
//
//	@Summary		Get booking money totals
//	@Description	Recomputes the gross, platform fee, GST and provider net for the booking
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingTotalsResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a party to the booking"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/totals [get]
func (h *BookingHandler) Totals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)
	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	totals, err := h.bookingService.Totals(r.Context(), userID, role, bookingID)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BookingTotalsResponseDTO{
		Gross:          int64(totals.Gross),
		PlatformFee:    int64(totals.PlatformFee),
		GSTAmount:      int64(totals.GSTAmount),
		NetToProvider:  int64(totals.NetToProvider),
		TotalPaid:      int64(totals.TotalPaid),
		RefundedAmount: int64(totals.RefundedAmount),
	})
}

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, actorID, bookingID int) (*domain.Booking, error)) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	b, err := op(r.Context(), userID, bookingID)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(b))
}

func respondBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookingservice.ErrBookingNotFound),
		errors.Is(err, bookingservice.ErrListingNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bookingservice.ErrNotParticipant):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, bookingservice.ErrPaymentNotStarted):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, bookingservice.ErrListingInactive),
		errors.Is(err, bookingservice.ErrOwnListing),
		errors.Is(err, money.ErrNegativeValue):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDTO(b *domain.Booking) dto.BookingResponseDTO {
	allowed := booking.AllowedTransitions(b.Status)
	actions := make([]string, len(allowed))
	for i, s := range allowed {
		actions[i] = string(s)
	}

	return dto.BookingResponseDTO{
		ID:             b.ID,
		Reference:      b.Reference,
		ListingID:      b.ListingID,
		CustomerID:     b.CustomerID,
		ProviderID:     b.ProviderID,
		Status:         b.Status,
		PriceInCents:   int64(b.Price),
		ChargesGST:     b.ChargesGST,
		ScheduledAt:    b.ScheduledAt,
		AllowedActions: actions,
	}
}
