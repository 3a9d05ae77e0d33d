package favoriteservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
)

type Repo interface {
	Add(ctx context.Context, userID, listingID int) error
	Remove(ctx context.Context, userID, listingID int) error
	FindListingsByUserID(ctx context.Context, userID int) ([]domain.Listing, error)
}

type ListingRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Listing, error)
}

type Service struct {
	favoriteRepo Repo
	listingRepo  ListingRepo
}

func New(favoriteRepo Repo, listingRepo ListingRepo) *Service {
	return &Service{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
	}
}

var ErrListingNotFound = errors.New("listing not found")

func (s *Service) Add(ctx context.Context, userID, listingID int) error {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrListingNotFound
	}
	if err := s.favoriteRepo.Add(ctx, userID, listingID); err != nil {
		zap.L().Error("can't add favorite", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, userID, listingID int) error {
	return s.favoriteRepo.Remove(ctx, userID, listingID)
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.Listing, error) {
	return s.favoriteRepo.FindListingsByUserID(ctx, userID)
}
