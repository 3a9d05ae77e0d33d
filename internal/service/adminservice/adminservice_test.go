package adminservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
)

type mocks struct {
	listingRepo *MockListingRepo
	userRepo    *MockUserRepo
	bookingRepo *MockBookingRepo
	auditRepo   *MockAuditRepo
	providers   *MockProviderService
	notifier    *MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		listingRepo: NewMockListingRepo(ctrl),
		userRepo:    NewMockUserRepo(ctrl),
		bookingRepo: NewMockBookingRepo(ctrl),
		auditRepo:   NewMockAuditRepo(ctrl),
		providers:   NewMockProviderService(ctrl),
		notifier:    NewMockNotifier(ctrl),
	}
	service := New(m.listingRepo, m.userRepo, m.bookingRepo, m.auditRepo, m.providers, m.notifier,
		RiskRule{MinBookings: 5, MaxDisputePct: 20})
	return service, m
}

func TestBulkListingAction(t *testing.T) {
	tests := []struct {
		name          string
		listingIDs    []int
		action        string
		prepareMock   func(m *mocks)
		expectedCount int
		expectedError error
	}{
		{
			name:       "Suspend deactivates listings",
			listingIDs: []int{1, 2, 3},
			action:     ActionSuspend,
			prepareMock: func(m *mocks) {
				m.listingRepo.EXPECT().SetActive(gomock.Any(), []int{1, 2, 3}, false).Return(3, nil)
				m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedCount: 3,
		},
		{
			name:       "Restore reactivates listings",
			listingIDs: []int{7},
			action:     ActionRestore,
			prepareMock: func(m *mocks) {
				m.listingRepo.EXPECT().SetActive(gomock.Any(), []int{7}, true).Return(1, nil)
				m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedCount: 1,
		},
		{
			name:          "Unknown action",
			listingIDs:    []int{1},
			action:        "purge",
			prepareMock:   func(m *mocks) {},
			expectedError: ErrUnknownAction,
		},
		{
			name:          "Empty selection",
			listingIDs:    nil,
			action:        ActionSuspend,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrEmptySelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			affected, err := service.BulkListingAction(context.Background(), 1, tt.listingIDs, tt.action)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCount, affected)
			}
		})
	}
}

func TestEvaluateProviderRisk(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		disputed    int
		prepareMock func(m *mocks)
		flagged     bool
	}{
		{
			name:     "Dispute ratio at threshold flags the provider",
			total:    10,
			disputed: 2,
			prepareMock: func(m *mocks) {
				m.listingRepo.EXPECT().SetActiveByProvider(gomock.Any(), 20, false).Return(4, nil)
				m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), 20, "risk_flagged", gomock.Any()).Return(nil)
			},
			flagged: true,
		},
		{
			name:        "Ratio below threshold",
			total:       10,
			disputed:    1,
			prepareMock: func(m *mocks) {},
		},
		{
			name:        "Too little history to judge",
			total:       4,
			disputed:    4,
			prepareMock: func(m *mocks) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.bookingRepo.EXPECT().CountsForProvider(gomock.Any(), 20).Return(tt.total, 0, tt.disputed, nil)
			tt.prepareMock(m)

			eval, err := service.EvaluateProviderRisk(context.Background(), 1, 20)
			assert.NoError(t, err)
			assert.Equal(t, tt.flagged, eval.Flagged)
			assert.Equal(t, tt.total, eval.TotalBookings)
			if tt.flagged {
				assert.Equal(t, 4, eval.ListingsAffected)
			}
		})
	}
}

func TestBroadcast(t *testing.T) {
	t.Run("Reaches all active users", func(t *testing.T) {
		service, m := NewMock(t)
		m.userRepo.EXPECT().ListActiveIDs(gomock.Any()).Return([]int{2, 3, 4}, nil)
		m.notifier.EXPECT().NotifyMany(gomock.Any(), []int{2, 3, 4}, "broadcast", "maintenance window").Return(nil)
		m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, nil)

		count, err := service.Broadcast(context.Background(), 1, "maintenance window")
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("No active users is a no-op", func(t *testing.T) {
		service, m := NewMock(t)
		m.userRepo.EXPECT().ListActiveIDs(gomock.Any()).Return(nil, nil)

		count, err := service.Broadcast(context.Background(), 1, "hello")
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestDecideKYC(t *testing.T) {
	t.Run("Approve", func(t *testing.T) {
		service, m := NewMock(t)
		m.providers.EXPECT().SetKYCStatus(gomock.Any(), 20, domain.KYCApproved).Return(nil)
		m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.AuditLog) (*domain.AuditLog, error) {
				assert.Equal(t, "kyc_approved", entry.Action)
				assert.Equal(t, 20, entry.TargetID)
				return entry, nil
			})
		m.notifier.EXPECT().Notify(gomock.Any(), 20, "kyc_approved", gomock.Any()).Return(nil)

		err := service.DecideKYC(context.Background(), 1, 20, true, "")
		assert.NoError(t, err)
	})

	t.Run("Reject", func(t *testing.T) {
		service, m := NewMock(t)
		m.providers.EXPECT().SetKYCStatus(gomock.Any(), 20, domain.KYCRejected).Return(nil)
		m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.notifier.EXPECT().Notify(gomock.Any(), 20, "kyc_rejected", gomock.Any()).Return(nil)

		err := service.DecideKYC(context.Background(), 1, 20, false, "blurry document")
		assert.NoError(t, err)
	})
}

func TestSuspendUser(t *testing.T) {
	service, m := NewMock(t)
	m.userRepo.EXPECT().SetSuspended(gomock.Any(), 5, true).Return(nil)
	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.AuditLog) (*domain.AuditLog, error) {
			assert.Equal(t, "user_suspended", entry.Action)
			return entry, nil
		})

	err := service.SuspendUser(context.Background(), 1, 5, true)
	assert.NoError(t, err)
}

func TestListAuditLogs(t *testing.T) {
	tests := []struct {
		name          string
		limit         uint32
		expectedLimit uint32
	}{
		{name: "Zero limit falls back to default", limit: 0, expectedLimit: 100},
		{name: "Oversized limit is clamped", limit: 10000, expectedLimit: 100},
		{name: "Reasonable limit passes through", limit: 50, expectedLimit: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.auditRepo.EXPECT().List(gomock.Any(), tt.expectedLimit).Return([]domain.AuditLog{}, nil)

			_, err := service.ListAuditLogs(context.Background(), tt.limit)
			assert.NoError(t, err)
		})
	}
}
