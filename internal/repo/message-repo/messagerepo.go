package messagerepo

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

func (r *Repository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	query := `
        INSERT INTO messages (booking_id, sender_id, body)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, msg.BookingID, msg.SenderID, msg.Body).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		zap.L().Error("can't save message", zap.Error(err))
		return nil, err
	}
	return msg, nil
}

func (r *Repository) FindByBookingID(ctx context.Context, bookingID int) ([]domain.Message, error) {
	query := `
        SELECT id, booking_id, sender_id, body, read, created_at
        FROM messages
        WHERE booking_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		zap.L().Error("can't query messages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.BookingID, &m.SenderID, &m.Body, &m.Read, &m.CreatedAt); err != nil {
			zap.L().Error("can't scan message row", zap.Error(err))
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// MarkRead marks messages in the conversation that were sent by the other
// party as read.
func (r *Repository) MarkRead(ctx context.Context, bookingID, readerID int) error {
	query := `
        UPDATE messages
        SET read = TRUE
        WHERE booking_id = $1 AND sender_id <> $2 AND NOT read
    `
	_, err := r.db.Exec(ctx, query, bookingID, readerID)
	if err != nil {
		zap.L().Error("can't mark messages read", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountUnread(ctx context.Context, bookingID, readerID int) (int, error) {
	query := `
        SELECT count(*)
        FROM messages
        WHERE booking_id = $1 AND sender_id <> $2 AND NOT read
    `
	var count int
	err := r.db.QueryRow(ctx, query, bookingID, readerID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count unread messages", zap.Error(err))
		return 0, err
	}
	return count, nil
}
