package listingservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Listing, error)
	Save(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	FindByProviderID(ctx context.Context, providerID int) ([]domain.Listing, error)
	Search(ctx context.Context, category, query string) ([]domain.Listing, error)
}

type ProviderRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.ProviderProfile, error)
}

type Service struct {
	listingRepo  Repo
	providerRepo ProviderRepo
}

func New(listingRepo Repo, providerRepo ProviderRepo) *Service {
	return &Service{
		listingRepo:  listingRepo,
		providerRepo: providerRepo,
	}
}

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNotOwner        = errors.New("listing does not belong to provider")
	ErrKYCNotApproved  = errors.New("provider is not KYC approved")
	ErrInvalidPrice    = errors.New("price must be positive")
)

type ListingInput struct {
	Title       string
	Description string
	Category    string
	Price       money.Cents
}

// Create publishes a listing. Only KYC-approved providers may list.
func (s *Service) Create(ctx context.Context, providerID int, in ListingInput) (*domain.Listing, error) {
	if in.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	profile, err := s.providerRepo.FindByUserID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.KYCStatus != domain.KYCApproved {
		return nil, ErrKYCNotApproved
	}

	listing := &domain.Listing{
		ProviderID:  providerID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
	}
	created, err := s.listingRepo.Save(ctx, listing)
	if err != nil {
		zap.L().Error("can't save listing", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, providerID, listingID int, in ListingInput) (*domain.Listing, error) {
	if in.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if listing.ProviderID != providerID {
		return nil, ErrNotOwner
	}

	listing.Title = in.Title
	listing.Description = in.Description
	listing.Category = in.Category
	listing.Price = in.Price
	if err := s.listingRepo.Update(ctx, listing); err != nil {
		zap.L().Error("can't update listing", zap.Error(err))
		return nil, err
	}
	return listing, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Listing, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

func (s *Service) ListByProvider(ctx context.Context, providerID int) ([]domain.Listing, error) {
	return s.listingRepo.FindByProviderID(ctx, providerID)
}

func (s *Service) Search(ctx context.Context, category, query string) ([]domain.Listing, error) {
	return s.listingRepo.Search(ctx, category, query)
}
