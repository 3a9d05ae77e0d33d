package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/booking"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/dto"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/adminservice"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/bookingservice"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/providerservice"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/auth"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/utils"
)

type Service interface {
	BulkListingAction(ctx context.Context, adminID int, listingIDs []int, action string) (int, error)
	EvaluateProviderRisk(ctx context.Context, adminID, providerID int) (*adminservice.RiskEvaluation, error)
	Broadcast(ctx context.Context, adminID int, body string) (int, error)
	DecideKYC(ctx context.Context, adminID, providerUserID int, approve bool, reason string) error
	SuspendUser(ctx context.Context, adminID, userID int, suspended bool) error
	ListAuditLogs(ctx context.Context, limit uint32) ([]domain.AuditLog, error)
}

type BookingService interface {
	Refund(ctx context.Context, bookingID int, amount money.Cents) (*domain.Booking, error)
}

type AdminHandler struct {
	adminService   Service
	bookingService BookingService
}

func New(adminService Service, bookingService BookingService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		bookingService: bookingService,
	}
}

// BulkListingAction godoc
//
//	@Summary		Suspend or restore listings in bulk
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BulkListingActionRequestDTO	true	"Bulk action body"
//	@Success		200		{object}	dto.BulkActionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Unknown action or empty selection"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/listings/bulk [post]
func (h *AdminHandler) BulkListingAction(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BulkListingActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	affected, err := h.adminService.BulkListingAction(r.Context(), adminID, req.ListingIDs, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrUnknownAction),
			errors.Is(err, adminservice.ErrEmptySelection):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BulkActionResponseDTO{Affected: affected})
}

// DecideKYC godoc
//
//	@Summary		Approve or reject a provider's verification
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int						true	"Provider user ID"
//	@Param			request	body		dto.KYCDecisionRequestDTO	true	"Decision body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Profile not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/providers/{userID}/kyc [post]
func (h *AdminHandler) DecideKYC(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.KYCDecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.adminService.DecideKYC(r.Context(), adminID, userID, req.Approve, req.Reason); err != nil {
		if errors.Is(err, providerservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "KYC decision recorded"})
}

// EvaluateRisk godoc
//
//	@Summary		Evaluate a provider's dispute risk
//	@Description	Applies the dispute-ratio rule; a flagged provider has all listings suspended
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int	true	"Provider user ID"
//	@Success		200		{object}	dto.RiskEvaluationResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/providers/{userID}/risk [post]
func (h *AdminHandler) EvaluateRisk(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	eval, err := h.adminService.EvaluateProviderRisk(r.Context(), adminID, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RiskEvaluationResponseDTO{
		ProviderID:       eval.ProviderID,
		TotalBookings:    eval.TotalBookings,
		DisputedBookings: eval.DisputedBookings,
		Flagged:          eval.Flagged,
		ListingsAffected: eval.ListingsAffected,
	})
}

// Broadcast godoc
//
//	@Summary		Broadcast an announcement
//	@Description	Delivers a notification to every active user in one transaction
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BroadcastRequestDTO	true	"Broadcast body"
//	@Success		200		{object}	dto.BroadcastResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/broadcast [post]
func (h *AdminHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BroadcastRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Body == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	recipients, err := h.adminService.Broadcast(r.Context(), adminID, req.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BroadcastResponseDTO{Recipients: recipients})
}

// SuspendUser godoc
//
//	@Summary		Suspend or restore a user account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.SuspendUserRequestDTO	true	"Suspension body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/suspend [post]
func (h *AdminHandler) SuspendUser(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.SuspendUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.adminService.SuspendUser(r.Context(), adminID, userID, req.Suspended); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User suspension updated"})
}

// Refund godoc
//
//	@Summary		Refund a booking
//	@Description	Issues a full or partial refund through the payments processor. Refunds come out of the provider's net.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Booking ID"
//	@Param			request	body		dto.RefundBookingRequestDTO	true	"Refund body"
//	@Success		200		{object}	dto.BookingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		409		{object}	utils.Response	"Booking not refundable"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		502		{object}	utils.Response	"Payments processor unavailable"
//	@Router			/api/admin/bookings/{id}/refund [post]
func (h *AdminHandler) Refund(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req dto.RefundBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.bookingService.Refund(r.Context(), bookingID, money.Cents(req.AmountInCents))
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrBookingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, booking.ErrInvalidTransition),
			errors.Is(err, bookingservice.ErrPaymentNotStarted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, money.ErrNegativeValue):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BookingResponseDTO{
		ID:           b.ID,
		Reference:    b.Reference,
		ListingID:    b.ListingID,
		CustomerID:   b.CustomerID,
		ProviderID:   b.ProviderID,
		Status:       b.Status,
		PriceInCents: int64(b.Price),
		ChargesGST:   b.ChargesGST,
		ScheduledAt:  b.ScheduledAt,
	})
}

// ListAuditLogs godoc
//
//	@Summary		List recent admin actions
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Max entries to return"
//	@Success		200		{array}		dto.AuditLogResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/audit-logs [get]
func (h *AdminHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.adminService.ListAuditLogs(r.Context(), uint32(limit))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AuditLogResponseDTO, len(logs))
	for i, entry := range logs {
		response[i] = dto.AuditLogResponseDTO{
			ID:         entry.ID,
			AdminID:    entry.AdminID,
			Action:     entry.Action,
			TargetType: entry.TargetType,
			TargetID:   entry.TargetID,
			Detail:     entry.Detail,
			CreatedAt:  entry.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
