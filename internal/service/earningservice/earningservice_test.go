package earningservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
	earningrepo "github.com/thefishingvault-bot/verial-services-sub005/internal/repo/earning-repo"
)

func NewMock(t *testing.T) (*Service, *MockEarningRepo, *MockPayoutRepo) {
	ctrl := gomock.NewController(t)
	earningRepo := NewMockEarningRepo(ctrl)
	payoutRepo := NewMockPayoutRepo(ctrl)
	service := New(earningRepo, payoutRepo, money.Rates{PlatformFeeBps: 1000, GSTBps: 1500})
	return service, earningRepo, payoutRepo
}

func TestRecordEarning(t *testing.T) {
	t.Run("Caches the split for a GST-registered provider", func(t *testing.T) {
		service, earningRepo, _ := NewMock(t)
		earningRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *domain.Earning) (*domain.Earning, error) {
				assert.Equal(t, money.Cents(11500), e.Gross)
				assert.Equal(t, money.Cents(1150), e.PlatformFee)
				assert.Equal(t, money.Cents(1500), e.GSTAmount)
				assert.Equal(t, money.Cents(8850), e.Net)
				return e, nil
			})

		err := service.RecordEarning(context.Background(), &domain.Booking{
			ID: 1, ProviderID: 20, Price: 11500, ChargesGST: true,
		})
		assert.NoError(t, err)
	})

	t.Run("No GST when provider is not registered", func(t *testing.T) {
		service, earningRepo, _ := NewMock(t)
		earningRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *domain.Earning) (*domain.Earning, error) {
				assert.Equal(t, money.Cents(0), e.GSTAmount)
				assert.Equal(t, money.Cents(9000), e.Net)
				return e, nil
			})

		err := service.RecordEarning(context.Background(), &domain.Booking{
			ID: 1, ProviderID: 20, Price: 10000, ChargesGST: false,
		})
		assert.NoError(t, err)
	})
}

func TestGetSummary(t *testing.T) {
	service, earningRepo, payoutRepo := NewMock(t)

	earningRepo.EXPECT().SummaryByProviderID(gomock.Any(), 20).Return(&earningrepo.Summary{
		Gross: 100000, PlatformFee: 10000, GSTAmount: 0, Net: 90000, Refunded: 5000,
	}, nil)
	payoutRepo.EXPECT().TotalByProviderID(gomock.Any(), 20).Return(money.Cents(30000), nil)

	summary, err := service.GetSummary(context.Background(), 20)
	assert.NoError(t, err)
	assert.Equal(t, money.Cents(90000), summary.Net)
	assert.Equal(t, money.Cents(55000), summary.Available)
	assert.Equal(t, money.Cents(30000), summary.PaidOut)
}

func TestRequestPayout(t *testing.T) {
	tests := []struct {
		name          string
		amount        money.Cents
		prepareMock   func(earningRepo *MockEarningRepo, payoutRepo *MockPayoutRepo)
		expectedError error
	}{
		{
			name:   "Successful payout",
			amount: 40000,
			prepareMock: func(earningRepo *MockEarningRepo, payoutRepo *MockPayoutRepo) {
				earningRepo.EXPECT().SummaryByProviderID(gomock.Any(), 20).Return(&earningrepo.Summary{
					Net: 90000,
				}, nil)
				payoutRepo.EXPECT().TotalByProviderID(gomock.Any(), 20).Return(money.Cents(0), nil)
				payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
						return p, nil
					})
			},
		},
		{
			name:   "Insufficient balance",
			amount: 100000,
			prepareMock: func(earningRepo *MockEarningRepo, payoutRepo *MockPayoutRepo) {
				earningRepo.EXPECT().SummaryByProviderID(gomock.Any(), 20).Return(&earningrepo.Summary{
					Net: 90000, Refunded: 5000,
				}, nil)
				payoutRepo.EXPECT().TotalByProviderID(gomock.Any(), 20).Return(money.Cents(0), nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:          "Zero amount",
			amount:        0,
			prepareMock:   func(earningRepo *MockEarningRepo, payoutRepo *MockPayoutRepo) {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount",
			amount:        -100,
			prepareMock:   func(earningRepo *MockEarningRepo, payoutRepo *MockPayoutRepo) {},
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, earningRepo, payoutRepo := NewMock(t)
			tt.prepareMock(earningRepo, payoutRepo)

			payout, err := service.RequestPayout(context.Background(), 20, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payout)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.amount, payout.Amount)
			}
		})
	}
}
