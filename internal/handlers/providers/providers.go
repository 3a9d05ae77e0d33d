package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/dto"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/providerservice"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/auth"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/utils"
)

type Service interface {
	Onboard(ctx context.Context, userID int, in providerservice.OnboardInput) (*domain.ProviderProfile, error)
	GetProfile(ctx context.Context, userID int) (*domain.ProviderProfile, error)
	TrustScore(ctx context.Context, userID int) (int, error)
}

type ProviderHandler struct {
	providerService Service
}

func New(providerService Service) *ProviderHandler {
	return &ProviderHandler{
		providerService: providerService,
	}
}

// Onboard godoc
//
//	@Summary		Onboard as a provider
//	@Description	Submit business details and a payout card for verification. Only the last four card digits are stored.
//	@Tags			Providers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OnboardProviderRequestDTO	true	"Onboarding request body"
//	@Success		200		{object}	dto.ProviderProfileResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Already onboarded"
//	@Failure		422		{object}	utils.Response	"Invalid payout card"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/providers/onboard [post]
func (h *ProviderHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.OnboardProviderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.providerService.Onboard(r.Context(), userID, providerservice.OnboardInput{
		BusinessName:  req.BusinessName,
		GSTRegistered: req.GSTRegistered,
		PayoutCard:    req.PayoutCard,
	})
	if err != nil {
		switch {
		case errors.Is(err, providerservice.ErrAlreadyOnboarded):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, providerservice.ErrInvalidPayoutCard):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProviderProfileResponseDTO{
		BusinessName:    profile.BusinessName,
		GSTRegistered:   profile.GSTRegistered,
		PayoutCardLast4: profile.PayoutCardLast4,
		KYCStatus:       profile.KYCStatus,
	})
}

// GetProfile godoc
//
//	@Summary		Get own provider profile
//	@Description	Returns the provider profile with its current trust score
//	@Tags			Providers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProviderProfileResponseDTO
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/providers/me [get]
func (h *ProviderHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	profile, err := h.providerService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, providerservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	score, err := h.providerService.TrustScore(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProviderProfileResponseDTO{
		BusinessName:    profile.BusinessName,
		GSTRegistered:   profile.GSTRegistered,
		PayoutCardLast4: profile.PayoutCardLast4,
		KYCStatus:       profile.KYCStatus,
		TrustScore:      score,
	})
}
