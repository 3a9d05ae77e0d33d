package reportservice

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	gomock "go.uber.org/mock/gomock"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/booking"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
)

func NewMock(t *testing.T) (*Service, *MockBookingRepo, *MockEarningRepo) {
	ctrl := gomock.NewController(t)
	bookingRepo := NewMockBookingRepo(ctrl)
	earningRepo := NewMockEarningRepo(ctrl)
	service := New(bookingRepo, earningRepo, money.Rates{PlatformFeeBps: 1000, GSTBps: 1500})
	return service, bookingRepo, earningRepo
}

func TestReceipt(t *testing.T) {
	paid := &domain.Booking{
		ID: 1, CustomerID: 10, ProviderID: 20,
		Status: string(booking.StatusPaid), Price: 10000, Reference: "ref-1",
	}

	tests := []struct {
		name          string
		requesterID   int
		role          string
		prepareMock   func(bookingRepo *MockBookingRepo)
		expectedError error
	}{
		{
			name:        "Customer gets a receipt for a paid booking",
			requesterID: 10,
			role:        domain.RoleCustomer,
			prepareMock: func(bookingRepo *MockBookingRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(paid, nil)
			},
		},
		{
			name:        "Admin can pull any receipt",
			requesterID: 99,
			role:        domain.RoleAdmin,
			prepareMock: func(bookingRepo *MockBookingRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(paid, nil)
			},
		},
		{
			name:        "Stranger is rejected",
			requesterID: 99,
			role:        domain.RoleCustomer,
			prepareMock: func(bookingRepo *MockBookingRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(paid, nil)
			},
			expectedError: ErrNotParticipant,
		},
		{
			name:        "Unpaid booking has no receipt",
			requesterID: 10,
			role:        domain.RoleCustomer,
			prepareMock: func(bookingRepo *MockBookingRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Booking{
					ID: 1, CustomerID: 10, ProviderID: 20,
					Status: string(booking.StatusAccepted), Price: 10000,
				}, nil)
			},
			expectedError: ErrNotPaid,
		},
		{
			name:        "Unknown booking",
			requesterID: 10,
			role:        domain.RoleCustomer,
			prepareMock: func(bookingRepo *MockBookingRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, bookingRepo, _ := NewMock(t)
			tt.prepareMock(bookingRepo)

			receipt, err := service.Receipt(context.Background(), tt.requesterID, tt.role, 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, receipt)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "ref-1", receipt.BookingRef)
				assert.Equal(t, money.Cents(10000), receipt.Totals.Gross)
				assert.Equal(t, money.Cents(1000), receipt.Totals.PlatformFee)
				assert.Equal(t, money.Cents(9000), receipt.Totals.NetToProvider)
				assert.NotEmpty(t, receipt.ReceiptNumber)
			}
		})
	}

	t.Run("Refund shows up in the totals", func(t *testing.T) {
		service, bookingRepo, _ := NewMock(t)
		bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Booking{
			ID: 1, CustomerID: 10, ProviderID: 20,
			Status: string(booking.StatusRefunded), Price: 10000, RefundedAmount: 3000, Reference: "ref-1",
		}, nil)

		receipt, err := service.Receipt(context.Background(), 10, domain.RoleCustomer, 1)
		assert.NoError(t, err)
		assert.Equal(t, money.Cents(3000), receipt.Totals.RefundedAmount)
		assert.Equal(t, money.Cents(6000), receipt.Totals.NetToProvider)
	})
}

func TestExportEarningsXLSX(t *testing.T) {
	service, _, earningRepo := NewMock(t)

	created := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	earningRepo.EXPECT().FindByProviderID(gomock.Any(), 20).Return([]domain.Earning{
		{BookingID: 1, Gross: 10000, PlatformFee: 1000, Net: 9000, CreatedAt: created},
		{BookingID: 2, Gross: 20000, PlatformFee: 2000, Net: 18000, Refunded: 5000, CreatedAt: created},
	}, nil)

	data, err := service.ExportEarningsXLSX(context.Background(), 20)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Earnings", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Booking ID", header)

	gross, err := f.GetCellValue("Earnings", "C2")
	assert.NoError(t, err)
	assert.Equal(t, "100", gross)

	totalNet, err := f.GetCellValue("Earnings", "F5")
	assert.NoError(t, err)
	assert.Equal(t, "220", totalNet)
}
