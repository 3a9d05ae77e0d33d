package payments

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingBookings sync.Map

type BookingSource interface {
	FindAwaitingPayment(ctx context.Context, limit uint32) ([]domain.Booking, error)
}

type BookingMarker interface {
	MarkPaid(ctx context.Context, bookingID int) error
}

type IntentGetter interface {
	GetIntent(intentID string) (*Intent, error)
}

// Reconciler polls bookings that have an open payment intent and applies the
// paid transition once the processor reports the intent succeeded. Hosted
// checkout means we never see the card; the processor is the source of truth.
type Reconciler struct {
	bookings       BookingSource
	marker         BookingMarker
	client         IntentGetter
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func NewReconciler(bookings BookingSource, marker BookingMarker, client IntentGetter) *Reconciler {
	return &Reconciler{
		bookings:       bookings,
		marker:         marker,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	zap.L().Info("Payments reconciler started")
	go r.run(ctx)
}

func (r *Reconciler) run(ctx context.Context) {
	ticker := time.NewTicker(r.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			r.processBookings(ctx)
		}
	}
}

func (r *Reconciler) processBookings(ctx context.Context) {
	bookings, err := r.bookings.FindAwaitingPayment(ctx, atomic.LoadUint32(&r.limit))
	if err != nil {
		zap.L().Error("Failed to fetch bookings awaiting payment", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, b := range bookings {
		b := b

		if _, loaded := processingBookings.LoadOrStore(b.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := r.workerPool.AddTask(ctx, func() error {
				defer processingBookings.Delete(b.ID)
				return r.handleBooking(ctx, b)
			})
			if err != nil {
				processingBookings.Delete(b.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing bookings", zap.Error(err))
	}
}

func (r *Reconciler) handleBooking(ctx context.Context, b domain.Booking) error {
	if b.PaymentIntentID == nil {
		return nil
	}

	var intent *Intent
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			intent, err = r.client.GetIntent(*b.PaymentIntentID)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to fetch intent for booking %s after %d retries: %w", b.Reference, maxRetries, err)
			}
		}
		break
	}

	switch intent.Status {
	case IntentStatusSucceeded:
		if err := r.marker.MarkPaid(ctx, b.ID); err != nil {
			return fmt.Errorf("failed to mark booking %s paid: %w", b.Reference, err)
		}
		zap.L().Info("Booking paid", zap.String("reference", b.Reference))
	case IntentStatusCanceled:
		zap.L().Info("Payment intent canceled, booking stays accepted", zap.String("reference", b.Reference))
	case IntentStatusProcessing, IntentStatusRequiresPayment:
		// Not settled yet; the next tick will pick it up again.
	default:
		zap.L().Warn("Unrecognized intent status",
			zap.String("reference", b.Reference),
			zap.String("status", intent.Status))
	}
	return nil
}
