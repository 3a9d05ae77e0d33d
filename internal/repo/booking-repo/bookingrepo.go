package bookingrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const bookingColumns = `id, reference, listing_id, customer_id, provider_id, status, price,
        charges_gst, refunded_amount, payment_intent_id, scheduled_at, created_at, updated_at`

func scan(row pgx.Row, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.Reference, &b.ListingID, &b.CustomerID, &b.ProviderID,
		&b.Status, &b.Price, &b.ChargesGST, &b.RefundedAmount, &b.PaymentIntentID,
		&b.ScheduledAt, &b.CreatedAt, &b.UpdatedAt)
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE id = $1
    `
	var b domain.Booking
	err := scan(r.db.QueryRow(ctx, query, id), &b)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find booking", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Save(ctx context.Context, b *domain.Booking) error {
	query := `
        INSERT INTO bookings (reference, listing_id, customer_id, provider_id, status, price, charges_gst, scheduled_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query,
			b.Reference, b.ListingID, b.CustomerID, b.ProviderID, b.Status,
			b.Price, b.ChargesGST, b.ScheduledAt).
			Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	})
	if err != nil {
		zap.L().Error("can't save booking", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByCustomerID(ctx context.Context, customerID int) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE customer_id = $1
        ORDER BY created_at DESC
    `
	return r.queryBookings(ctx, query, customerID)
}

func (r *Repository) FindByProviderID(ctx context.Context, providerID int) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE provider_id = $1
        ORDER BY created_at DESC
    `
	return r.queryBookings(ctx, query, providerID)
}

// FindAwaitingPayment returns bookings that have a payment intent open but
// have not been confirmed paid yet.
func (r *Repository) FindAwaitingPayment(ctx context.Context, limit uint32) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE status = 'accepted' AND payment_intent_id IS NOT NULL
        ORDER BY updated_at ASC
        LIMIT $1
    `
	return r.queryBookings(ctx, query, int(limit))
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE bookings
        SET status = $1, updated_at = now()
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, id)
		return err
	})
	if err != nil {
		zap.L().Error("can't update booking status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetPaymentIntent(ctx context.Context, id int, intentID string) error {
	query := `
        UPDATE bookings
        SET payment_intent_id = $1, updated_at = now()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, intentID, id)
	if err != nil {
		zap.L().Error("can't set payment intent", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddRefund(ctx context.Context, id int, amount money.Cents, status string) error {
	query := `
        UPDATE bookings
        SET refunded_amount = refunded_amount + $1, status = $2, updated_at = now()
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, amount, status, id)
		return err
	})
	if err != nil {
		zap.L().Error("can't record booking refund", zap.Error(err))
		return err
	}
	return nil
}

// CountsForProvider returns total, completed and disputed booking counts,
// the inputs to trust scoring and risk evaluation.
func (r *Repository) CountsForProvider(ctx context.Context, providerID int) (total, completed, disputed int, err error) {
	query := `
        SELECT count(*),
               count(*) FILTER (WHERE status = 'completed'),
               count(*) FILTER (WHERE status IN ('disputed', 'refunded'))
        FROM bookings
        WHERE provider_id = $1
    `
	err = r.db.QueryRow(ctx, query, providerID).Scan(&total, &completed, &disputed)
	if err != nil {
		zap.L().Error("can't count provider bookings", zap.Error(err))
		return 0, 0, 0, err
	}
	return total, completed, disputed, nil
}

func (r *Repository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(&b.ID, &b.Reference, &b.ListingID, &b.CustomerID, &b.ProviderID,
			&b.Status, &b.Price, &b.ChargesGST, &b.RefundedAmount, &b.PaymentIntentID,
			&b.ScheduledAt, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
