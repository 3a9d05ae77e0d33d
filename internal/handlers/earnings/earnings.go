package earnings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/dto"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/earningservice"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/reportservice"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/auth"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/utils"
)

type Service interface {
	GetSummary(ctx context.Context, providerID int) (*earningservice.Summary, error)
	RequestPayout(ctx context.Context, providerID int, amount money.Cents) (*domain.Payout, error)
	GetPayouts(ctx context.Context, providerID int) ([]domain.Payout, error)
}

type ReportService interface {
	Receipt(ctx context.Context, requesterID int, role string, bookingID int) (*reportservice.Receipt, error)
	ExportEarningsXLSX(ctx context.Context, providerID int) ([]byte, error)
}

type EarningHandler struct {
	earningService Service
	reportService  ReportService
}

func New(earningService Service, reportService ReportService) *EarningHandler {
	return &EarningHandler{
		earningService: earningService,
		reportService:  reportService,
	}
}

// GetSummary godoc
//
//	@Summary		Get earnings summary
//	@Description	Lifetime gross, platform fee, GST, net, refunds and available balance for the provider
//	@Tags			Earnings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.EarningsSummaryResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/earnings/summary [get]
func (h *EarningHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.earningService.GetSummary(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EarningsSummaryResponseDTO{
		GrossTotal:       int64(summary.Gross),
		PlatformFeeTotal: int64(summary.PlatformFee),
		GSTTotal:         int64(summary.GSTAmount),
		NetTotal:         int64(summary.Net),
		RefundedTotal:    int64(summary.Refunded),
		Available:        int64(summary.Available),
		PaidOut:          int64(summary.PaidOut),
	})
}

// RequestPayout godoc
//
//	@Summary		Request a payout
//	@Description	Withdraw part of the available balance to the payout card on file
//	@Tags			Earnings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayoutRequestDTO	true	"Payout request body"
//	@Success		200		{object}	dto.PayoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/earnings/payouts [post]
func (h *EarningHandler) RequestPayout(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payout, err := h.earningService.RequestPayout(r.Context(), userID, money.Cents(req.AmountInCents))
	if err != nil {
		switch {
		case errors.Is(err, earningservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, earningservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayoutResponseDTO{
		AmountInCents: int64(payout.Amount),
		ProcessedAt:   payout.ProcessedAt,
	})
}

// GetPayouts godoc
//
//	@Summary		Get payout history
//	@Tags			Earnings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PayoutResponseDTO
//	@Success		204	{object}	utils.Response	"No payouts yet"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/earnings/payouts [get]
func (h *EarningHandler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	payouts, err := h.earningService.GetPayouts(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payouts")
		return
	}
	if len(payouts) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Payouts not found")
		return
	}

	response := make([]dto.PayoutResponseDTO, len(payouts))
	for i, p := range payouts {
		response[i] = dto.PayoutResponseDTO{
			AmountInCents: int64(p.Amount),
			ProcessedAt:   p.ProcessedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Receipt godoc
//
//	@Summary		Get a booking receipt
//	@Description	Itemized receipt for a paid booking, including GST when the provider is registered
//	@Tags			Earnings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.ReceiptResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a party to the booking"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		409	{object}	utils.Response	"Booking not paid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/receipt [get]
func (h *EarningHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)
	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	receipt, err := h.reportService.Receipt(r.Context(), userID, role, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, reportservice.ErrBookingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, reportservice.ErrNotParticipant):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, reportservice.ErrNotPaid):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ReceiptResponseDTO{
		ReceiptNumber:  receipt.ReceiptNumber,
		BookingRef:     receipt.BookingRef,
		IssuedAt:       receipt.IssuedAt,
		Gross:          int64(receipt.Totals.Gross),
		PlatformFee:    int64(receipt.Totals.PlatformFee),
		GSTAmount:      int64(receipt.Totals.GSTAmount),
		NetToProvider:  int64(receipt.Totals.NetToProvider),
		TotalPaid:      int64(receipt.Totals.TotalPaid),
		RefundedAmount: int64(receipt.Totals.RefundedAmount),
		GSTInclusive:   receipt.GSTInclusive,
	})
}

// Export godoc
//
//	@Summary		Export earnings as a spreadsheet
//	@Description	Downloads the provider's full earnings history as an XLSX file
//	@Tags			Earnings
//	@Security		BearerAuth
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200	{file}		binary
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/earnings/export [get]
func (h *EarningHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	data, err := h.reportService.ExportEarningsXLSX(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="earnings.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		return
	}
}
