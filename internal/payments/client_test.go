package payments

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thefishingvault-bot/verial-services-sub005/pkg/clients"
)

func NewClientMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := NewClient("http://payments.local", httpClient)
	return client, httpClient
}

func TestClient_CreateIntent(t *testing.T) {
	tests := []struct {
		name          string
		statusCode    int
		respBody      []byte
		transportErr  error
		expectedError error
	}{
		{
			name:       "Intent created",
			statusCode: http.StatusCreated,
			respBody:   []byte(`{"id":"pi_123","status":"requires_payment_method","client_secret":"cs_abc","amount":10000,"currency":"aud"}`),
		},
		{
			name:          "Processor returns 503",
			statusCode:    http.StatusServiceUnavailable,
			expectedError: ErrProcessorUnavailable,
		},
		{
			name:          "Transport error",
			transportErr:  fmt.Errorf("connection refused"),
			expectedError: ErrProcessorUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := NewClientMock(t)
			httpClient.EXPECT().
				Post("http://payments.local/v1/payment_intents", gomock.Any(), gomock.Any()).
				Return(tt.statusCode, tt.respBody, nil, tt.transportErr)

			intent, err := client.CreateIntent(10000, "aud", "ref-123")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, intent)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "pi_123", intent.ID)
				assert.Equal(t, IntentStatusRequiresPayment, intent.Status)
				assert.Equal(t, "cs_abc", intent.ClientSecret)
			}
		})
	}
}

func TestClient_GetIntent(t *testing.T) {
	t.Run("Intent fetched", func(t *testing.T) {
		client, httpClient := NewClientMock(t)
		httpClient.EXPECT().
			Get("http://payments.local/v1/payment_intents/pi_123", nil).
			Return(http.StatusOK, []byte(`{"id":"pi_123","status":"succeeded","amount":10000,"currency":"aud"}`), nil, nil)

		intent, err := client.GetIntent("pi_123")
		assert.NoError(t, err)
		assert.Equal(t, IntentStatusSucceeded, intent.Status)
	})

	t.Run("Not found", func(t *testing.T) {
		client, httpClient := NewClientMock(t)
		httpClient.EXPECT().
			Get("http://payments.local/v1/payment_intents/pi_404", nil).
			Return(http.StatusNotFound, nil, nil, nil)

		intent, err := client.GetIntent("pi_404")
		assert.ErrorIs(t, err, ErrProcessorUnavailable)
		assert.Nil(t, intent)
	})

	t.Run("Garbage response body", func(t *testing.T) {
		client, httpClient := NewClientMock(t)
		httpClient.EXPECT().
			Get("http://payments.local/v1/payment_intents/pi_123", nil).
			Return(http.StatusOK, []byte(`not json`), nil, nil)

		intent, err := client.GetIntent("pi_123")
		assert.ErrorContains(t, err, "failed to parse payment intent")
		assert.Nil(t, intent)
	})
}

func TestClient_CreateRefund(t *testing.T) {
	t.Run("Refund created", func(t *testing.T) {
		client, httpClient := NewClientMock(t)
		httpClient.EXPECT().
			Post("http://payments.local/v1/refunds", gomock.Any(), gomock.Any()).
			Return(http.StatusCreated, []byte(`{"id":"re_1","payment_intent":"pi_123","amount":3000,"status":"succeeded"}`), nil, nil)

		refund, err := client.CreateRefund("pi_123", 3000)
		assert.NoError(t, err)
		assert.Equal(t, "re_1", refund.ID)
		assert.Equal(t, int64(3000), refund.Amount)
	})

	t.Run("Processor down", func(t *testing.T) {
		client, httpClient := NewClientMock(t)
		httpClient.EXPECT().
			Post("http://payments.local/v1/refunds", gomock.Any(), gomock.Any()).
			Return(0, nil, nil, fmt.Errorf("connection refused"))

		refund, err := client.CreateRefund("pi_123", 3000)
		assert.ErrorIs(t, err, ErrProcessorUnavailable)
		assert.Nil(t, refund)
	})
}
