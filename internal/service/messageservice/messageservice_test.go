package messageservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockBookingRepo) {
	ctrl := gomock.NewController(t)
	messageRepo := NewMockRepo(ctrl)
	bookingRepo := NewMockBookingRepo(ctrl)
	service := New(messageRepo, bookingRepo)
	return service, messageRepo, bookingRepo
}

func TestSend(t *testing.T) {
	tests := []struct {
		name          string
		senderID      int
		body          string
		prepareMock   func(messageRepo *MockRepo, bookingRepo *MockBookingRepo)
		expectedError error
	}{
		{
			name:     "Customer sends a message",
			senderID: 10,
			body:     "What time suits you?",
			prepareMock: func(messageRepo *MockRepo, bookingRepo *MockBookingRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Booking{
					ID: 1, CustomerID: 10, ProviderID: 20,
				}, nil)
				messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, msg *domain.Message) (*domain.Message, error) {
						msg.ID = 1
						return msg, nil
					})
			},
		},
		{
			name:     "Provider sends a message",
			senderID: 20,
			body:     "Morning works",
			prepareMock: func(messageRepo *MockRepo, bookingRepo *MockBookingRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Booking{
					ID: 1, CustomerID: 10, ProviderID: 20,
				}, nil)
				messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, msg *domain.Message) (*domain.Message, error) {
						msg.ID = 2
						return msg, nil
					})
			},
		},
		{
			name:     "Stranger is rejected",
			senderID: 99,
			body:     "hello",
			prepareMock: func(messageRepo *MockRepo, bookingRepo *MockBookingRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Booking{
					ID: 1, CustomerID: 10, ProviderID: 20,
				}, nil)
			},
			expectedError: ErrNotParticipant,
		},
		{
			name:          "Empty body",
			senderID:      10,
			body:          "",
			prepareMock:   func(messageRepo *MockRepo, bookingRepo *MockBookingRepo) {},
			expectedError: ErrEmptyMessage,
		},
		{
			name:     "Unknown booking",
			senderID: 10,
			body:     "hello",
			prepareMock: func(messageRepo *MockRepo, bookingRepo *MockBookingRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, messageRepo, bookingRepo := NewMock(t)
			tt.prepareMock(messageRepo, bookingRepo)

			msg, err := service.Send(context.Background(), tt.senderID, 1, tt.body)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, msg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.body, msg.Body)
				assert.Equal(t, tt.senderID, msg.SenderID)
			}
		})
	}
}

func TestList(t *testing.T) {
	t.Run("Listing marks the conversation read", func(t *testing.T) {
		service, messageRepo, bookingRepo := NewMock(t)
		bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Booking{
			ID: 1, CustomerID: 10, ProviderID: 20,
		}, nil)
		messageRepo.EXPECT().FindByBookingID(gomock.Any(), 1).Return([]domain.Message{
			{ID: 1, BookingID: 1, SenderID: 20, Body: "hi"},
		}, nil)
		messageRepo.EXPECT().MarkRead(gomock.Any(), 1, 10).Return(nil)

		messages, err := service.List(context.Background(), 10, 1)
		assert.NoError(t, err)
		assert.Len(t, messages, 1)
	})

	t.Run("Stranger can't read", func(t *testing.T) {
		service, _, bookingRepo := NewMock(t)
		bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Booking{
			ID: 1, CustomerID: 10, ProviderID: 20,
		}, nil)

		messages, err := service.List(context.Background(), 99, 1)
		assert.ErrorIs(t, err, ErrNotParticipant)
		assert.Nil(t, messages)
	})
}

func TestUnreadCount(t *testing.T) {
	service, messageRepo, bookingRepo := NewMock(t)
	bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Booking{
		ID: 1, CustomerID: 10, ProviderID: 20,
	}, nil)
	messageRepo.EXPECT().CountUnread(gomock.Any(), 1, 10).Return(3, nil)

	count, err := service.UnreadCount(context.Background(), 10, 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
