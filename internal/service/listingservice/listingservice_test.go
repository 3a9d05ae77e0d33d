package listingservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockProviderRepo) {
	ctrl := gomock.NewController(t)
	listingRepo := NewMockRepo(ctrl)
	providerRepo := NewMockProviderRepo(ctrl)
	service := New(listingRepo, providerRepo)
	return service, listingRepo, providerRepo
}

func TestCreate(t *testing.T) {
	input := ListingInput{
		Title:       "Lawn mowing",
		Description: "Front and back",
		Category:    "gardening",
		Price:       8500,
	}

	tests := []struct {
		name          string
		input         ListingInput
		prepareMock   func(listingRepo *MockRepo, providerRepo *MockProviderRepo)
		expectedError error
	}{
		{
			name:  "Approved provider publishes a listing",
			input: input,
			prepareMock: func(listingRepo *MockRepo, providerRepo *MockProviderRepo) {
				providerRepo.EXPECT().FindByUserID(gomock.Any(), 20).Return(&domain.ProviderProfile{
					UserID: 20, KYCStatus: domain.KYCApproved,
				}, nil)
				listingRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, listing *domain.Listing) (*domain.Listing, error) {
						listing.ID = 1
						return listing, nil
					})
			},
		},
		{
			name:  "Pending KYC blocks publishing",
			input: input,
			prepareMock: func(listingRepo *MockRepo, providerRepo *MockProviderRepo) {
				providerRepo.EXPECT().FindByUserID(gomock.Any(), 20).Return(&domain.ProviderProfile{
					UserID: 20, KYCStatus: domain.KYCPending,
				}, nil)
			},
			expectedError: ErrKYCNotApproved,
		},
		{
			name:  "No provider profile",
			input: input,
			prepareMock: func(listingRepo *MockRepo, providerRepo *MockProviderRepo) {
				providerRepo.EXPECT().FindByUserID(gomock.Any(), 20).Return(nil, nil)
			},
			expectedError: ErrKYCNotApproved,
		},
		{
			name:          "Zero price",
			input:         ListingInput{Title: "Free stuff", Price: 0},
			prepareMock:   func(listingRepo *MockRepo, providerRepo *MockProviderRepo) {},
			expectedError: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, listingRepo, providerRepo := NewMock(t)
			tt.prepareMock(listingRepo, providerRepo)

			listing, err := service.Create(context.Background(), 20, tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, listing)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 20, listing.ProviderID)
				assert.Equal(t, money.Cents(8500), listing.Price)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	input := ListingInput{Title: "Lawn mowing deluxe", Category: "gardening", Price: 9500}

	tests := []struct {
		name          string
		prepareMock   func(listingRepo *MockRepo)
		expectedError error
	}{
		{
			name: "Owner updates the listing",
			prepareMock: func(listingRepo *MockRepo) {
				listingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Listing{
					ID: 1, ProviderID: 20, Title: "Lawn mowing", Price: 8500,
				}, nil)
				listingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, listing *domain.Listing) error {
						assert.Equal(t, "Lawn mowing deluxe", listing.Title)
						assert.Equal(t, money.Cents(9500), listing.Price)
						return nil
					})
			},
		},
		{
			name: "Someone else's listing",
			prepareMock: func(listingRepo *MockRepo) {
				listingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Listing{
					ID: 1, ProviderID: 99,
				}, nil)
			},
			expectedError: ErrNotOwner,
		},
		{
			name: "Unknown listing",
			prepareMock: func(listingRepo *MockRepo) {
				listingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrListingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, listingRepo, _ := NewMock(t)
			tt.prepareMock(listingRepo)

			listing, err := service.Update(context.Background(), 20, 1, input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, listing)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Lawn mowing deluxe", listing.Title)
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	t.Run("Existing listing", func(t *testing.T) {
		service, listingRepo, _ := NewMock(t)
		listingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Listing{ID: 1}, nil)

		listing, err := service.GetByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, listing.ID)
	})

	t.Run("Unknown listing", func(t *testing.T) {
		service, listingRepo, _ := NewMock(t)
		listingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)

		listing, err := service.GetByID(context.Background(), 1)
		assert.ErrorIs(t, err, ErrListingNotFound)
		assert.Nil(t, listing)
	})
}

func TestSearch(t *testing.T) {
	service, listingRepo, _ := NewMock(t)
	listingRepo.EXPECT().Search(gomock.Any(), "gardening", "lawn").Return([]domain.Listing{
		{ID: 1, Category: "gardening", Title: "Lawn mowing"},
	}, nil)

	listings, err := service.Search(context.Background(), "gardening", "lawn")
	assert.NoError(t, err)
	assert.Len(t, listings, 1)
}
