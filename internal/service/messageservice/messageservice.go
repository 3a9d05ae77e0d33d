package messageservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	FindByBookingID(ctx context.Context, bookingID int) ([]domain.Message, error)
	MarkRead(ctx context.Context, bookingID, readerID int) error
	CountUnread(ctx context.Context, bookingID, readerID int) (int, error)
}

type BookingRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
}

type Service struct {
	messageRepo Repo
	bookingRepo BookingRepo
}

func New(messageRepo Repo, bookingRepo BookingRepo) *Service {
	return &Service{
		messageRepo: messageRepo,
		bookingRepo: bookingRepo,
	}
}

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotParticipant  = errors.New("user is not a party to this booking")
	ErrEmptyMessage    = errors.New("message body is empty")
)

// Send posts a message into a booking's conversation. Only the booking's
// customer and provider may write.
func (s *Service) Send(ctx context.Context, senderID, bookingID int, body string) (*domain.Message, error) {
	if body == "" {
		return nil, ErrEmptyMessage
	}
	if err := s.authorize(ctx, senderID, bookingID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		BookingID: bookingID,
		SenderID:  senderID,
		Body:      body,
	}
	created, err := s.messageRepo.Create(ctx, msg)
	if err != nil {
		zap.L().Error("can't send message", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// List returns the conversation and marks the other party's messages read.
func (s *Service) List(ctx context.Context, readerID, bookingID int) ([]domain.Message, error) {
	if err := s.authorize(ctx, readerID, bookingID); err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		zap.L().Error("can't list messages", zap.Error(err))
		return nil, err
	}
	if err := s.messageRepo.MarkRead(ctx, bookingID, readerID); err != nil {
		zap.L().Error("can't mark messages read", zap.Error(err))
	}
	return messages, nil
}

func (s *Service) UnreadCount(ctx context.Context, readerID, bookingID int) (int, error) {
	if err := s.authorize(ctx, readerID, bookingID); err != nil {
		return 0, err
	}
	return s.messageRepo.CountUnread(ctx, bookingID, readerID)
}

func (s *Service) authorize(ctx context.Context, userID, bookingID int) error {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBookingNotFound
	}
	if b.CustomerID != userID && b.ProviderID != userID {
		return ErrNotParticipant
	}
	return nil
}
