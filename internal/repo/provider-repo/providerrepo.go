package providerrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
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

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.ProviderProfile, error) {
	var profile domain.ProviderProfile
	query := `
        SELECT id, user_id, business_name, gst_registered, payout_card_last4, kyc_status, created_at
        FROM provider_profiles
        WHERE user_id = $1
    `
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.BusinessName, &profile.GSTRegistered,
		&profile.PayoutCardLast4, &profile.KYCStatus, &profile.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find provider profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

func (r *Repository) Create(ctx context.Context, profile *domain.ProviderProfile) (*domain.ProviderProfile, error) {
	query := `
        INSERT INTO provider_profiles (user_id, business_name, gst_registered, payout_card_last4, kyc_status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.BusinessName, profile.GSTRegistered,
		profile.PayoutCardLast4, profile.KYCStatus).Scan(&profile.ID)
	if err != nil {
		zap.L().Error("can't save provider profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) UpdateKYCStatus(ctx context.Context, userID int, status string) error {
	query := `
        UPDATE provider_profiles
        SET kyc_status = $1
        WHERE user_id = $2
    `
	_, err := r.db.Exec(ctx, query, status, userID)
	if err != nil {
		zap.L().Error("can't update kyc status", zap.Error(err))
		return err
	}
	return nil
}
