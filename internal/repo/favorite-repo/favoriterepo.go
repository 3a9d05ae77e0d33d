package favoriterepo

import (
	"context"

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

// Add is idempotent: favoriting an already-favorited listing is a no-op.
func (r *Repository) Add(ctx context.Context, userID, listingID int) error {
	query := `
        INSERT INTO favorites (user_id, listing_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, listing_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, userID, listingID)
	if err != nil {
		zap.L().Error("can't save favorite", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Remove(ctx context.Context, userID, listingID int) error {
	query := `
        DELETE FROM favorites
        WHERE user_id = $1 AND listing_id = $2
    `
	_, err := r.db.Exec(ctx, query, userID, listingID)
	if err != nil {
		zap.L().Error("can't remove favorite", zap.Error(err))
		return err
	}
	return nil
}

// FindListingsByUserID returns the favorited listings themselves, newest
// favorite first.
func (r *Repository) FindListingsByUserID(ctx context.Context, userID int) ([]domain.Listing, error) {
	query := `
        SELECT l.id, l.provider_id, l.title, l.description, l.category, l.price, l.active, l.created_at, l.updated_at
        FROM favorites f
        JOIN listings l ON l.id = f.listing_id
        WHERE f.user_id = $1
        ORDER BY f.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't query favorites", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		err := rows.Scan(&l.ID, &l.ProviderID, &l.Title, &l.Description, &l.Category,
			&l.Price, &l.Active, &l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan favorite row", zap.Error(err))
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, nil
}
