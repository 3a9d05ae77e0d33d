package messages

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/dto"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/service/messageservice"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/auth"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/utils"
)

type Service interface {
	Send(ctx context.Context, senderID, bookingID int, body string) (*domain.Message, error)
	List(ctx context.Context, readerID, bookingID int) ([]domain.Message, error)
	UnreadCount(ctx context.Context, readerID, bookingID int) (int, error)
}

type MessageHandler struct {
	messageService Service
}

func New(messageService Service) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// Send godoc
//
//	@Summary		Send a message
//	@Description	Post a message into the booking conversation. Only the booking's two parties may write.
//	@Tags			Messages
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Booking ID"
//	@Param			request	body		dto.SendMessageRequestDTO	true	"Message body"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not a party to the booking"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/messages [post]
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req dto.SendMessageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.messageService.Send(r.Context(), userID, bookingID, req.Body)
	if err != nil {
		respondMessageError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(msg))
}

// List godoc
//
//	@Summary		Get the booking conversation
//	@Description	Returns all messages for the booking and marks the other party's messages read
//	@Tags			Messages
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{array}		dto.MessageResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a party to the booking"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/messages [get]
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	messages, err := h.messageService.List(r.Context(), userID, bookingID)
	if err != nil {
		respondMessageError(w, err)
		return
	}

	response := make([]dto.MessageResponseDTO, len(messages))
	for i := range messages {
		response[i] = toDTO(&messages[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UnreadCount godoc
//
//	@Summary		Count unread messages
//	@Tags			Messages
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.UnreadCountResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a party to the booking"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/messages/unread [get]
func (h *MessageHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	count, err := h.messageService.UnreadCount(r.Context(), userID, bookingID)
	if err != nil {
		respondMessageError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UnreadCountResponseDTO{Unread: count})
}

func respondMessageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, messageservice.ErrBookingNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, messageservice.ErrNotParticipant):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, messageservice.ErrEmptyMessage):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDTO(m *domain.Message) dto.MessageResponseDTO {
	return dto.MessageResponseDTO{
		ID:        m.ID,
		BookingID: m.BookingID,
		SenderID:  m.SenderID,
		Body:      m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}
