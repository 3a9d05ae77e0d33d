package bookingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

const selectBookingQuery = `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE id = $1
    `

func bookingRows(ts time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "reference", "listing_id", "customer_id", "provider_id", "status", "price",
		"charges_gst", "refunded_amount", "payment_intent_id", "scheduled_at", "created_at", "updated_at",
	}).AddRow(1, "ref-1", 5, 10, 20, "pending", money.Cents(10000),
		false, money.Cents(0), (*string)(nil), ts, ts, ts)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	ts := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing booking is returned",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectBookingQuery)).
					WithArgs(1).
					WillReturnRows(bookingRows(ts))
			},
			found: true,
		},
		{
			name: "Missing booking returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectBookingQuery)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectBookingQuery)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, "ref-1", result.Reference)
				assert.Equal(t, money.Cents(10000), result.Price)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	ts := time.Now()

	insertQuery := `
        INSERT INTO bookings (reference, listing_id, customer_id, provider_id, status, price, charges_gst, scheduled_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully saves booking",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
						WithArgs("ref-1", 5, 10, 20, "pending", money.Cents(10000), false, ts).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
							AddRow(1, ts, ts))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
						WithArgs("ref-1", 5, 10, 20, "pending", money.Cents(10000), false, ts).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			b := &domain.Booking{
				Reference: "ref-1", ListingID: 5, CustomerID: 10, ProviderID: 20,
				Status: "pending", Price: 10000, ScheduledAt: ts,
			}
			err := repo.Save(context.Background(), b)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, b.ID)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, tx := NewMock(t)

	updateQuery := `
        UPDATE bookings
        SET status = $1, updated_at = now()
        WHERE id = $2
    `

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
		mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
			WithArgs("accepted", 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		return fn(ctx)
	})

	err := repo.UpdateStatus(context.Background(), 1, "accepted")
	assert.NoError(t, err)
}

func TestRepository_CountsForProvider(t *testing.T) {
	repo, mock, _ := NewMock(t)

	countQuery := `
        SELECT count(*),
               count(*) FILTER (WHERE status = 'completed'),
               count(*) FILTER (WHERE status IN ('disputed', 'refunded'))
        FROM bookings
        WHERE provider_id = $1
    `

	mock.ExpectQuery(regexp.QuoteMeta(countQuery)).
		WithArgs(20).
		WillReturnRows(pgxmock.NewRows([]string{"count", "completed", "disputed"}).AddRow(12, 10, 1))

	total, completed, disputed, err := repo.CountsForProvider(context.Background(), 20)
	assert.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Equal(t, 10, completed)
	assert.Equal(t, 1, disputed)
}

func TestRepository_FindAwaitingPayment(t *testing.T) {
	repo, mock, _ := NewMock(t)
	ts := time.Now()

	awaitingQuery := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE status = 'accepted' AND payment_intent_id IS NOT NULL
        ORDER BY updated_at ASC
        LIMIT $1
    `

	intentID := "pi_123"
	rows := pgxmock.NewRows([]string{
		"id", "reference", "listing_id", "customer_id", "provider_id", "status", "price",
		"charges_gst", "refunded_amount", "payment_intent_id", "scheduled_at", "created_at", "updated_at",
	}).AddRow(1, "ref-1", 5, 10, 20, "accepted", money.Cents(10000),
		false, money.Cents(0), &intentID, ts, ts, ts)

	mock.ExpectQuery(regexp.QuoteMeta(awaitingQuery)).
		WithArgs(100).
		WillReturnRows(rows)

	bookings, err := repo.FindAwaitingPayment(context.Background(), 100)
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, "pi_123", *bookings[0].PaymentIntentID)
}
