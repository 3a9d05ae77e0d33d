package favorites

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/dto"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/favoriteservice"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/auth"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/utils"
)

type Service interface {
	Add(ctx context.Context, userID, listingID int) error
	Remove(ctx context.Context, userID, listingID int) error
	List(ctx context.Context, userID int) ([]domain.Listing, error)
}

type FavoriteHandler struct {
	favoriteService Service
}

func New(favoriteService Service) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// Add godoc
//
//	@Summary		Save a listing to favorites
//	@Description	Saving the same listing twice is a no-op
//	@Tags			Favorites
//	@Security		BearerAuth
//	@Produce		json
//	@Param			listingID	path		int	true	"Listing ID"
//	@Success		200			{object}	utils.Response
//	@Failure		404			{object}	utils.Response	"Listing not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/favorites/{listingID} [post]
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	listingID, err := strconv.Atoi(chi.URLParam(r, "listingID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid listing id")
		return
	}

	if err := h.favoriteService.Add(r.Context(), userID, listingID); err != nil {
		if errors.Is(err, favoriteservice.ErrListingNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Listing saved to favorites"})
}

// Remove godoc
//
//	@Summary		Remove a listing from favorites
//	@Tags			Favorites
//	@Security		BearerAuth
//	@Produce		json
//	@Param			listingID	path		int	true	"Listing ID"
//	@Success		200			{object}	utils.Response
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/favorites/{listingID} [delete]
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	listingID, err := strconv.Atoi(chi.URLParam(r, "listingID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid listing id")
		return
	}

	if err := h.favoriteService.Remove(r.Context(), userID, listingID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Listing removed from favorites"})
}

// List godoc
//
//	@Summary		List favorite listings
//	@Tags			Favorites
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ListingResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/favorites [get]
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	listings, err := h.favoriteService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ListingResponseDTO, len(listings))
	for i, l := range listings {
		response[i] = dto.ListingResponseDTO{
			ID:           l.ID,
			ProviderID:   l.ProviderID,
			Title:        l.Title,
			Description:  l.Description,
			Category:     l.Category,
			PriceInCents: int64(l.Price),
			Active:       l.Active,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
