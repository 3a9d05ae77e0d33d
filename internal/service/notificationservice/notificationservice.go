package notificationservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	CreateForUsers(ctx context.Context, userIDs []int, kind, body string) error
	FindByUserID(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int) error
}

type Service struct {
	notificationRepo Repo
}

func New(notificationRepo Repo) *Service {
	return &Service{
		notificationRepo: notificationRepo,
	}
}

// Notify enqueues a notification; the dispatcher delivers it out of band.
func (s *Service) Notify(ctx context.Context, userID int, kind, body string) error {
	_, err := s.notificationRepo.Create(ctx, &domain.Notification{
		UserID: userID,
		Kind:   kind,
		Body:   body,
	})
	if err != nil {
		zap.L().Error("can't create notification", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) NotifyMany(ctx context.Context, userIDs []int, kind, body string) error {
	return s.notificationRepo.CreateForUsers(ctx, userIDs, kind, body)
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't list notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID int) error {
	return s.notificationRepo.MarkRead(ctx, id, userID)
}
