package notificationrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
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

func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query := `
        INSERT INTO notifications (user_id, kind, body)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, n.UserID, n.Kind, n.Body).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return nil, err
	}
	return n, nil
}

// CreateForUsers writes one notification per recipient inside a single
// transaction, so a broadcast is all-or-nothing.
func (r *Repository) CreateForUsers(ctx context.Context, userIDs []int, kind, body string) error {
	query := `
        INSERT INTO notifications (user_id, kind, body)
        VALUES ($1, $2, $3)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, userID := range userIDs {
			if _, err := r.db.Exec(ctx, query, userID, kind, body); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't save broadcast notifications", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Notification, error) {
	query := `
        SELECT id, user_id, kind, body, read, delivered_at, created_at
        FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't query notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Body, &n.Read, &n.DeliveredAt, &n.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *Repository) MarkRead(ctx context.Context, id, userID int) error {
	query := `
        UPDATE notifications
        SET read = TRUE
        WHERE id = $1 AND user_id = $2
    `
	_, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("can't mark notification read", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindUndelivered(ctx context.Context, limit uint32) ([]domain.Notification, error) {
	query := `
        SELECT id, user_id, kind, body, read, delivered_at, created_at
        FROM notifications
        WHERE delivered_at IS NULL
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't query undelivered notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Body, &n.Read, &n.DeliveredAt, &n.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *Repository) MarkDelivered(ctx context.Context, id int) error {
	query := `
        UPDATE notifications
        SET delivered_at = now()
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark notification delivered", zap.Error(err))
		return err
	}
	return nil
}
