package listingrepo

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

const listingColumns = "id, provider_id, title, description, category, price, active, created_at, updated_at"

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(&l.ID, &l.ProviderID, &l.Title, &l.Description, &l.Category,
		&l.Price, &l.Active, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Listing, error) {
	query := `
        SELECT ` + listingColumns + `
        FROM listings
        WHERE id = $1
    `
	listing, err := scanListing(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find listing", zap.Error(err))
		return nil, err
	}
	return listing, nil
}

func (r *Repository) Save(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	query := `
        INSERT INTO listings (provider_id, title, description, category, price, active)
        VALUES ($1, $2, $3, $4, $5, TRUE)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		listing.ProviderID, listing.Title, listing.Description, listing.Category, listing.Price).
		Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save listing", zap.Error(err))
		return nil, err
	}
	listing.Active = true
	return listing, nil
}

func (r *Repository) Update(ctx context.Context, listing *domain.Listing) error {
	query := `
        UPDATE listings
        SET title = $1, description = $2, category = $3, price = $4, updated_at = now()
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query,
		listing.Title, listing.Description, listing.Category, listing.Price, listing.ID)
	if err != nil {
		zap.L().Error("can't update listing", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByProviderID(ctx context.Context, providerID int) ([]domain.Listing, error) {
	query := `
        SELECT ` + listingColumns + `
        FROM listings
        WHERE provider_id = $1
        ORDER BY created_at DESC
    `
	return r.queryListings(ctx, query, providerID)
}

// Search returns active listings, optionally narrowed by category and a
// case-insensitive title match.
func (r *Repository) Search(ctx context.Context, category, query string) ([]domain.Listing, error) {
	sql := `
        SELECT ` + listingColumns + `
        FROM listings
        WHERE active
          AND ($1 = '' OR category = $1)
          AND ($2 = '' OR title ILIKE '%' || $2 || '%')
        ORDER BY created_at DESC
    `
	return r.queryListings(ctx, sql, category, query)
}

func (r *Repository) SetActive(ctx context.Context, ids []int, active bool) (int, error) {
	query := `
        UPDATE listings
        SET active = $1, updated_at = now()
        WHERE id = ANY($2)
    `
	tag, err := r.db.Exec(ctx, query, active, ids)
	if err != nil {
		zap.L().Error("can't bulk update listings", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) SetActiveByProvider(ctx context.Context, providerID int, active bool) (int, error) {
	query := `
        UPDATE listings
        SET active = $1, updated_at = now()
        WHERE provider_id = $2 AND active <> $1
    `
	tag, err := r.db.Exec(ctx, query, active, providerID)
	if err != nil {
		zap.L().Error("can't update provider listings", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) queryListings(ctx context.Context, query string, args ...any) ([]domain.Listing, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query listings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		err := rows.Scan(&l.ID, &l.ProviderID, &l.Title, &l.Description, &l.Category,
			&l.Price, &l.Active, &l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan listing row", zap.Error(err))
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, nil
}
