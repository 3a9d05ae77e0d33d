package notificationservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/metrics"
	"github.com/thefishingvault-bot/verial-services-sub005/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type DeliveryRepo interface {
	FindUndelivered(ctx context.Context, limit uint32) ([]domain.Notification, error)
	MarkDelivered(ctx context.Context, id int) error
}

type webhookPayload struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	Kind   string `json:"kind"`
	Body   string `json:"body"`
}

// Dispatcher delivers queued notifications to an external webhook. When no
// webhook is configured notifications stay in-app only and the dispatcher
// never starts.
type Dispatcher struct {
	webhookURL     string
	repo           DeliveryRepo
	client         clients.HTTPClientI
	limit          uint32
	updateInterval time.Duration
}

func NewDispatcher(webhookURL string, repo DeliveryRepo, client clients.HTTPClientI) *Dispatcher {
	return &Dispatcher{
		webhookURL:     webhookURL,
		repo:           repo,
		client:         client,
		limit:          100,
		updateInterval: time.Second * 5,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	if d.webhookURL == "" {
		zap.L().Info("No notify webhook configured, dispatcher disabled")
		return
	}
	zap.L().Info("Notification dispatcher started")
	go d.run(ctx)
}

func (d *Dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping dispatcher")
			return
		case <-ticker.C:
			d.deliverPending(ctx)
		}
	}
}

func (d *Dispatcher) deliverPending(ctx context.Context) {
	notifications, err := d.repo.FindUndelivered(ctx, d.limit)
	if err != nil {
		zap.L().Error("Failed to fetch undelivered notifications", zap.Error(err))
		return
	}

	var g errgroup.Group
	g.SetLimit(10)
	for _, n := range notifications {
		n := n
		g.Go(func() error {
			return d.deliver(ctx, n)
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("Error delivering notifications", zap.Error(err))
	}
}

func (d *Dispatcher) deliver(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(webhookPayload{
		ID:     n.ID,
		UserID: n.UserID,
		Kind:   n.Kind,
		Body:   n.Body,
	})
	if err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, _, _, err := d.client.Post(d.webhookURL, headers, body)
			if err != nil || statusCode >= http.StatusInternalServerError {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to deliver notification %d after %d retries: %w", n.ID, maxRetries, err)
				}
				return fmt.Errorf("failed to deliver notification %d after %d retries: status %d", n.ID, maxRetries, statusCode)
			}

			if err := d.repo.MarkDelivered(ctx, n.ID); err != nil {
				return err
			}
			metrics.IncNotificationDelivered()
			return nil
		}
	}
	return nil
}
