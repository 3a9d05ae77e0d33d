package payments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
)

func NewMock(t *testing.T) (*Reconciler, *MockBookingSource, *MockBookingMarker, *MockIntentGetter) {
	ctrl := gomock.NewController(t)
	bookings := NewMockBookingSource(ctrl)
	marker := NewMockBookingMarker(ctrl)
	client := NewMockIntentGetter(ctrl)
	reconciler := NewReconciler(bookings, marker, client)
	return reconciler, bookings, marker, client
}

func intentRef(id string) *string {
	return &id
}

func TestReconciler_Start(t *testing.T) {
	reconciler, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reconciler.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestReconciler_processBookings(t *testing.T) {
	tests := []struct {
		name             string
		mockFindBookings func(ctx context.Context, limit uint32) ([]domain.Booking, error)
		mockAddTask      func(ctx context.Context, task Task) error
		bookingCount     int
	}{
		{
			name: "successfully dispatches bookings",
			mockFindBookings: func(ctx context.Context, limit uint32) ([]domain.Booking, error) {
				return []domain.Booking{
					{ID: 101, Reference: "ref-101", Status: "accepted", PaymentIntentID: intentRef("pi_101")},
					{ID: 102, Reference: "ref-102", Status: "accepted", PaymentIntentID: intentRef("pi_102")},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			bookingCount: 2,
		},
		{
			name: "fails when fetching bookings",
			mockFindBookings: func(ctx context.Context, limit uint32) ([]domain.Booking, error) {
				return nil, fmt.Errorf("failed to fetch bookings")
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			bookingCount: 0,
		},
		{
			name: "error in workerPool AddTask",
			mockFindBookings: func(ctx context.Context, limit uint32) ([]domain.Booking, error) {
				return []domain.Booking{
					{ID: 103, Reference: "ref-103", Status: "accepted", PaymentIntentID: intentRef("pi_103")},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			bookingCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			bookings := NewMockBookingSource(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			bookings.EXPECT().
				FindAwaitingPayment(gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockFindBookings).
				Times(1)
			for i := 0; i < tt.bookingCount; i++ {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					AnyTimes()
			}

			reconciler := &Reconciler{
				bookings:   bookings,
				workerPool: workerPool,
				limit:      10,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			reconciler.processBookings(context.Background())
		})
	}
}

func TestReconciler_handleBooking(t *testing.T) {
	tests := []struct {
		name          string
		booking       domain.Booking
		intent        *Intent
		intentErr     error
		markPaid      bool
		markPaidErr   error
		cancelContext bool
		expectedError string
	}{
		{
			name:     "Succeeded intent marks the booking paid",
			booking:  domain.Booking{ID: 201, Reference: "ref-201", PaymentIntentID: intentRef("pi_201")},
			intent:   &Intent{ID: "pi_201", Status: IntentStatusSucceeded},
			markPaid: true,
		},
		{
			name:    "Canceled intent leaves the booking alone",
			booking: domain.Booking{ID: 202, Reference: "ref-202", PaymentIntentID: intentRef("pi_202")},
			intent:  &Intent{ID: "pi_202", Status: IntentStatusCanceled},
		},
		{
			name:    "Processing intent waits for the next tick",
			booking: domain.Booking{ID: 203, Reference: "ref-203", PaymentIntentID: intentRef("pi_203")},
			intent:  &Intent{ID: "pi_203", Status: IntentStatusProcessing},
		},
		{
			name:    "Booking without intent is skipped",
			booking: domain.Booking{ID: 204, Reference: "ref-204"},
		},
		{
			name:          "Processor down after retries",
			booking:       domain.Booking{ID: 205, Reference: "ref-205", PaymentIntentID: intentRef("pi_205")},
			intentErr:     ErrProcessorUnavailable,
			expectedError: "failed to fetch intent for booking ref-205 after 3 retries",
		},
		{
			name:          "MarkPaid failure is reported",
			booking:       domain.Booking{ID: 206, Reference: "ref-206", PaymentIntentID: intentRef("pi_206")},
			intent:        &Intent{ID: "pi_206", Status: IntentStatusSucceeded},
			markPaid:      true,
			markPaidErr:   fmt.Errorf("database error"),
			expectedError: "failed to mark booking ref-206 paid",
		},
		{
			name:          "Context canceled",
			booking:       domain.Booking{ID: 207, Reference: "ref-207", PaymentIntentID: intentRef("pi_207")},
			cancelContext: true,
			expectedError: context.Canceled.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reconciler, _, marker, client := NewMock(t)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancelContext {
				cancel()
			}

			if tt.booking.PaymentIntentID != nil && !tt.cancelContext {
				if tt.intentErr != nil {
					client.EXPECT().
						GetIntent(*tt.booking.PaymentIntentID).
						Return(nil, tt.intentErr).
						Times(maxRetries)
				} else {
					client.EXPECT().
						GetIntent(*tt.booking.PaymentIntentID).
						Return(tt.intent, nil).
						Times(1)
				}
			}
			if tt.markPaid {
				marker.EXPECT().MarkPaid(gomock.Any(), tt.booking.ID).Return(tt.markPaidErr).Times(1)
			}

			err := reconciler.handleBooking(ctx, tt.booking)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
