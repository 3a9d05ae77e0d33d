package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/clients"
)

// Intent statuses reported by the payments processor.
const (
	IntentStatusRequiresPayment = "requires_payment_method"
	IntentStatusProcessing      = "processing"
	IntentStatusSucceeded       = "succeeded"
	IntentStatusCanceled        = "canceled"
)

var ErrProcessorUnavailable = errors.New("payments processor unavailable")

type Intent struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret,omitempty"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Reference    string `json:"reference,omitempty"`
}

type Refund struct {
	ID            string `json:"id"`
	PaymentIntent string `json:"payment_intent"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
}

// Client talks to the payments processor API. Hosted checkout flows live on
// the processor side; this client only creates and inspects intents and
// refunds.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func NewClient(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    url,
		client: client,
	}
}

func (c *Client) CreateIntent(amount money.Cents, currency, reference string) (*Intent, error) {
	body, err := json.Marshal(Intent{
		Amount:    int64(amount),
		Currency:  currency,
		Reference: reference,
	})
	if err != nil {
		return nil, err
	}

	statusCode, respBody, _, err := c.client.Post(c.url+"/v1/payment_intents", jsonHeaders(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessorUnavailable, err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrProcessorUnavailable, statusCode)
	}

	var intent Intent
	if err := json.Unmarshal(respBody, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse payment intent: %w", err)
	}
	return &intent, nil
}

func (c *Client) GetIntent(intentID string) (*Intent, error) {
	statusCode, respBody, _, err := c.client.Get(c.url+"/v1/payment_intents/"+intentID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessorUnavailable, err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrProcessorUnavailable, statusCode)
	}

	var intent Intent
	if err := json.Unmarshal(respBody, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse payment intent: %w", err)
	}
	return &intent, nil
}

func (c *Client) CreateRefund(intentID string, amount money.Cents) (*Refund, error) {
	body, err := json.Marshal(Refund{
		PaymentIntent: intentID,
		Amount:        int64(amount),
	})
	if err != nil {
		return nil, err
	}

	statusCode, respBody, _, err := c.client.Post(c.url+"/v1/refunds", jsonHeaders(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessorUnavailable, err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrProcessorUnavailable, statusCode)
	}

	var refund Refund
	if err := json.Unmarshal(respBody, &refund); err != nil {
		return nil, fmt.Errorf("failed to parse refund: %w", err)
	}
	return &refund, nil
}

func jsonHeaders() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return h
}
