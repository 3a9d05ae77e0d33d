package notificationservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/clients"
)

func NewDispatcherMock(t *testing.T) (*Dispatcher, *MockDeliveryRepo, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	repo := NewMockDeliveryRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	dispatcher := NewDispatcher("http://hooks.local/notify", repo, client)
	return dispatcher, repo, client
}

func TestDispatcher_Start(t *testing.T) {
	t.Run("Disabled without webhook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockDeliveryRepo(ctrl)
		client := clients.NewMockHTTPClientI(ctrl)
		dispatcher := NewDispatcher("", repo, client)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		dispatcher.Start(ctx)
		time.Sleep(20 * time.Millisecond)
	})

	t.Run("Runs until context is canceled", func(t *testing.T) {
		dispatcher, _, _ := NewDispatcherMock(t)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		dispatcher.Start(ctx)
		time.Sleep(20 * time.Millisecond)
		cancel()
	})
}

func TestDispatcher_deliverPending(t *testing.T) {
	t.Run("Delivers every pending notification", func(t *testing.T) {
		dispatcher, repo, client := NewDispatcherMock(t)

		repo.EXPECT().FindUndelivered(gomock.Any(), uint32(100)).Return([]domain.Notification{
			{ID: 1, UserID: 10, Kind: "booking_accepted", Body: "Your booking was accepted"},
			{ID: 2, UserID: 11, Kind: "new_message", Body: "You have a new message"},
		}, nil)
		client.EXPECT().
			Post("http://hooks.local/notify", gomock.Any(), gomock.Any()).
			Return(http.StatusOK, nil, nil, nil).
			Times(2)
		repo.EXPECT().MarkDelivered(gomock.Any(), 1).Return(nil)
		repo.EXPECT().MarkDelivered(gomock.Any(), 2).Return(nil)

		dispatcher.deliverPending(context.Background())
	})

	t.Run("Fetch failure skips the tick", func(t *testing.T) {
		dispatcher, repo, _ := NewDispatcherMock(t)

		repo.EXPECT().FindUndelivered(gomock.Any(), uint32(100)).Return(nil, fmt.Errorf("database error"))

		dispatcher.deliverPending(context.Background())
	})
}

func TestDispatcher_deliver(t *testing.T) {
	notification := domain.Notification{ID: 7, UserID: 10, Kind: "booking_paid", Body: "Payment received"}

	t.Run("Posts the payload and marks delivered", func(t *testing.T) {
		dispatcher, repo, client := NewDispatcherMock(t)

		client.EXPECT().
			Post("http://hooks.local/notify", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, headers http.Header, body []byte) (int, []byte, http.Header, error) {
				assert.Equal(t, "application/json", headers.Get("Content-Type"))
				var payload webhookPayload
				assert.NoError(t, json.Unmarshal(body, &payload))
				assert.Equal(t, 7, payload.ID)
				assert.Equal(t, "booking_paid", payload.Kind)
				return http.StatusOK, nil, nil, nil
			})
		repo.EXPECT().MarkDelivered(gomock.Any(), 7).Return(nil)

		err := dispatcher.deliver(context.Background(), notification)
		assert.NoError(t, err)
	})

	t.Run("Gives up after repeated 5xx", func(t *testing.T) {
		dispatcher, _, client := NewDispatcherMock(t)

		client.EXPECT().
			Post("http://hooks.local/notify", gomock.Any(), gomock.Any()).
			Return(http.StatusBadGateway, nil, nil, nil).
			Times(maxRetries)

		err := dispatcher.deliver(context.Background(), notification)
		assert.ErrorContains(t, err, "failed to deliver notification 7 after 3 retries")
	})

	t.Run("Gives up after repeated transport errors", func(t *testing.T) {
		dispatcher, _, client := NewDispatcherMock(t)

		client.EXPECT().
			Post("http://hooks.local/notify", gomock.Any(), gomock.Any()).
			Return(0, nil, nil, fmt.Errorf("connection refused")).
			Times(maxRetries)

		err := dispatcher.deliver(context.Background(), notification)
		assert.ErrorContains(t, err, "failed to deliver notification 7 after 3 retries")
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("MarkDelivered failure is reported", func(t *testing.T) {
		dispatcher, repo, client := NewDispatcherMock(t)

		client.EXPECT().
			Post("http://hooks.local/notify", gomock.Any(), gomock.Any()).
			Return(http.StatusOK, nil, nil, nil)
		repo.EXPECT().MarkDelivered(gomock.Any(), 7).Return(fmt.Errorf("database error"))

		err := dispatcher.deliver(context.Background(), notification)
		assert.Error(t, err)
	})

	t.Run("Context canceled", func(t *testing.T) {
		dispatcher, _, _ := NewDispatcherMock(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := dispatcher.deliver(ctx, notification)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
