package payoutrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error) {
	query := `
        INSERT INTO payouts (provider_id, amount, processed_at)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, payout.ProviderID, payout.Amount, payout.ProcessedAt).Scan(&payout.ID)
	if err != nil {
		zap.L().Error("can't save payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func (r *Repository) FindByProviderID(ctx context.Context, providerID int) ([]domain.Payout, error) {
	query := `
        SELECT id, provider_id, amount, processed_at
        FROM payouts
        WHERE provider_id = $1
        ORDER BY processed_at DESC
    `
	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		zap.L().Error("can't query payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		if err := rows.Scan(&p.ID, &p.ProviderID, &p.Amount, &p.ProcessedAt); err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, nil
}

func (r *Repository) TotalByProviderID(ctx context.Context, providerID int) (money.Cents, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM payouts
        WHERE provider_id = $1
    `
	var total money.Cents
	err := r.db.QueryRow(ctx, query, providerID).Scan(&total)
	if err != nil {
		zap.L().Error("can't total payouts", zap.Error(err))
		return 0, err
	}
	return total, nil
}
