package auditrepo

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

func (r *Repository) Create(ctx context.Context, entry *domain.AuditLog) (*domain.AuditLog, error) {
	query := `
        INSERT INTO audit_logs (admin_id, action, target_type, target_id, detail)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		entry.AdminID, entry.Action, entry.TargetType, entry.TargetID, entry.Detail).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save audit log", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) List(ctx context.Context, limit uint32) ([]domain.AuditLog, error) {
	query := `
        SELECT id, admin_id, action, target_type, target_id, detail, created_at
        FROM audit_logs
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't query audit logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditLog
	for rows.Next() {
		var e domain.AuditLog
		err := rows.Scan(&e.ID, &e.AdminID, &e.Action, &e.TargetType, &e.TargetID, &e.Detail, &e.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan audit log row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
