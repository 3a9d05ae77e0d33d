package listings

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
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/listingservice"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/auth"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, providerID int, in listingservice.ListingInput) (*domain.Listing, error)
	Update(ctx context.Context, providerID, listingID int, in listingservice.ListingInput) (*domain.Listing, error)
	GetByID(ctx context.Context, id int) (*domain.Listing, error)
	ListByProvider(ctx context.Context, providerID int) ([]domain.Listing, error)
	Search(ctx context.Context, category, query string) ([]domain.Listing, error)
}

type ListingHandler struct {
	listingService Service
}

func New(listingService Service) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// Create godoc
//
//	@Summary		Create a listing
//	@Description	Publish a new service listing. Requires an approved provider profile.
//	@Tags			Listings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateListingRequestDTO	true	"Listing body"
//	@Success		200		{object}	dto.ListingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Provider not approved"
//	@Failure		422		{object}	utils.Response	"Invalid price"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/listings [post]
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateListingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	listing, err := h.listingService.Create(r.Context(), userID, listingservice.ListingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       money.Cents(req.PriceInCents),
	})
	if err != nil {
		respondListingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(listing))
}

// Update godoc
//
//	@Summary		Update a listing
//	@Description	Edit an owned listing. Price changes never affect existing bookings.
//	@Tags			Listings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Listing ID"
//	@Param			request	body		dto.CreateListingRequestDTO	true	"Listing body"
//	@Success		200		{object}	dto.ListingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not the owner"
//	@Failure		404		{object}	utils.Response	"Listing not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/listings/{id} [put]
func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	listingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid listing id")
		return
	}

	var req dto.CreateListingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	listing, err := h.listingService.Update(r.Context(), userID, listingID, listingservice.ListingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       money.Cents(req.PriceInCents),
	})
	if err != nil {
		respondListingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(listing))
}

// Get godoc
//
//	@Summary		Get a listing
//	@Tags			Listings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Listing ID"
//	@Success		200	{object}	dto.ListingResponseDTO
//	@Failure		404	{object}	utils.Response	"Listing not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/listings/{id} [get]
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid listing id")
		return
	}

	listing, err := h.listingService.GetByID(r.Context(), listingID)
	if err != nil {
		respondListingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(listing))
}

// Search godoc
//
//	@Summary		Search listings
//	@Description	Filter active listings by category and a free-text query
//	@Tags			Listings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			category	query		string	false	"Category filter"
//	@Param			q			query		string	false	"Text search over title and description"
//	@Success		200			{array}		dto.ListingResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/listings [get]
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	listings, err := h.listingService.Search(r.Context(), category, query)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOs(listings))
}

// Mine godoc
//
//	@Summary		List own listings
//	@Tags			Listings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ListingResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/listings/mine [get]
func (h *ListingHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	listings, err := h.listingService.ListByProvider(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOs(listings))
}

func respondListingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listingservice.ErrListingNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, listingservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, listingservice.ErrKYCNotApproved):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, listingservice.ErrInvalidPrice):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDTO(l *domain.Listing) dto.ListingResponseDTO {
	return dto.ListingResponseDTO{
		ID:           l.ID,
		ProviderID:   l.ProviderID,
		Title:        l.Title,
		Description:  l.Description,
		Category:     l.Category,
		PriceInCents: int64(l.Price),
		Active:       l.Active,
	}
}

func toDTOs(listings []domain.Listing) []dto.ListingResponseDTO {
	response := make([]dto.ListingResponseDTO, len(listings))
	for i := range listings {
		response[i] = toDTO(&listings[i])
	}
	return response
}
