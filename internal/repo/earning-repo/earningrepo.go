package earningrepo

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

func (r *Repository) Create(ctx context.Context, e *domain.Earning) (*domain.Earning, error) {
	query := `
        INSERT INTO earnings (booking_id, provider_id, gross, platform_fee, gst_amount, net)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query,
			e.BookingID, e.ProviderID, e.Gross, e.PlatformFee, e.GSTAmount, e.Net).
			Scan(&e.ID, &e.CreatedAt)
	})
	if err != nil {
		zap.L().Error("can't save earning", zap.Error(err))
		return nil, err
	}
	return e, nil
}

func (r *Repository) FindByBookingID(ctx context.Context, bookingID int) (*domain.Earning, error) {
	query := `
        SELECT id, booking_id, provider_id, gross, platform_fee, gst_amount, net, refunded, created_at
        FROM earnings
        WHERE booking_id = $1
    `
	var e domain.Earning
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&e.ID, &e.BookingID, &e.ProviderID, &e.Gross, &e.PlatformFee,
		&e.GSTAmount, &e.Net, &e.Refunded, &e.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find earning", zap.Error(err))
		return nil, err
	}
	return &e, nil
}

func (r *Repository) FindByProviderID(ctx context.Context, providerID int) ([]domain.Earning, error) {
	query := `
        SELECT id, booking_id, provider_id, gross, platform_fee, gst_amount, net, refunded, created_at
        FROM earnings
        WHERE provider_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		zap.L().Error("can't query earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var earnings []domain.Earning
	for rows.Next() {
		var e domain.Earning
		err := rows.Scan(&e.ID, &e.BookingID, &e.ProviderID, &e.Gross, &e.PlatformFee,
			&e.GSTAmount, &e.Net, &e.Refunded, &e.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan earning row", zap.Error(err))
			return nil, err
		}
		earnings = append(earnings, e)
	}
	return earnings, nil
}

type Summary struct {
	Gross       money.Cents
	PlatformFee money.Cents
	GSTAmount   money.Cents
	Net         money.Cents
	Refunded    money.Cents
}

func (r *Repository) SummaryByProviderID(ctx context.Context, providerID int) (*Summary, error) {
	query := `
        SELECT COALESCE(SUM(gross), 0), COALESCE(SUM(platform_fee), 0),
               COALESCE(SUM(gst_amount), 0), COALESCE(SUM(net), 0), COALESCE(SUM(refunded), 0)
        FROM earnings
        WHERE provider_id = $1
    `
	var s Summary
	err := r.db.QueryRow(ctx, query, providerID).Scan(
		&s.Gross, &s.PlatformFee, &s.GSTAmount, &s.Net, &s.Refunded)
	if err != nil {
		zap.L().Error("can't summarize earnings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) AddRefund(ctx context.Context, bookingID int, amount money.Cents) error {
	query := `
        UPDATE earnings
        SET refunded = refunded + $1
        WHERE booking_id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, amount, bookingID)
		return err
	})
	if err != nil {
		zap.L().Error("can't record earning refund", zap.Error(err))
		return err
	}
	return nil
}
