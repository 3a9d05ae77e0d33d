package favoriteservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockListingRepo) {
	ctrl := gomock.NewController(t)
	favoriteRepo := NewMockRepo(ctrl)
	listingRepo := NewMockListingRepo(ctrl)
	service := New(favoriteRepo, listingRepo)
	return service, favoriteRepo, listingRepo
}

func TestAdd(t *testing.T) {
	t.Run("Existing listing is saved", func(t *testing.T) {
		service, favoriteRepo, listingRepo := NewMock(t)
		listingRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Listing{ID: 5}, nil)
		favoriteRepo.EXPECT().Add(gomock.Any(), 10, 5).Return(nil)

		err := service.Add(context.Background(), 10, 5)
		assert.NoError(t, err)
	})

	t.Run("Unknown listing", func(t *testing.T) {
		service, _, listingRepo := NewMock(t)
		listingRepo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)

		err := service.Add(context.Background(), 10, 5)
		assert.ErrorIs(t, err, ErrListingNotFound)
	})
}

func TestRemove(t *testing.T) {
	service, favoriteRepo, _ := NewMock(t)
	favoriteRepo.EXPECT().Remove(gomock.Any(), 10, 5).Return(nil)

	err := service.Remove(context.Background(), 10, 5)
	assert.NoError(t, err)
}

func TestList(t *testing.T) {
	service, favoriteRepo, _ := NewMock(t)
	favoriteRepo.EXPECT().FindListingsByUserID(gomock.Any(), 10).Return([]domain.Listing{
		{ID: 5, Title: "Lawn mowing"},
	}, nil)

	listings, err := service.List(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, listings, 1)
}
