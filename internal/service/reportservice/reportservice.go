package reportservice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/thefishingvault-bot/verial-services-sub005/internal/booking"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/domain"
	"github.com/thefishingvault-bot/verial-services-sub005/internal/money"
)

type BookingRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
}

type EarningRepo interface {
	FindByBookingID(ctx context.Context, bookingID int) (*domain.Earning, error)
	FindByProviderID(ctx context.Context, providerID int) ([]domain.Earning, error)
}

type Service struct {
	bookingRepo BookingRepo
	earningRepo EarningRepo
	rates       money.Rates
}

func New(bookingRepo BookingRepo, earningRepo EarningRepo, rates money.Rates) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		earningRepo: earningRepo,
		rates:       rates,
	}
}

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotParticipant  = errors.New("user is not a party to this booking")
	ErrNotPaid         = errors.New("booking has not been paid")
)

type Receipt struct {
	ReceiptNumber string
	BookingRef    string
	IssuedAt      time.Time
	Totals        money.BookingTotals
	GSTInclusive  bool
}

// Receipt builds a payment receipt for a paid booking. Amounts are recomputed
// from the booking snapshot, so a receipt for a partially refunded booking
// reflects the refund.
func (s *Service) Receipt(ctx context.Context, requesterID int, role string, bookingID int) (*Receipt, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if role != domain.RoleAdmin && b.CustomerID != requesterID && b.ProviderID != requesterID {
		return nil, ErrNotParticipant
	}
	if !paidFamily(b.Status) {
		return nil, ErrNotPaid
	}

	totals, err := money.CalculateBookingTotals(money.BookingTotalsInput{
		Price:          b.Price,
		ChargesGST:     b.ChargesGST,
		RefundedAmount: b.RefundedAmount,
		Rates:          s.rates,
	})
	if err != nil {
		zap.L().Error("receipt totals computation failed", zap.Error(err), zap.Int("bookingID", b.ID))
		return nil, err
	}

	return &Receipt{
		ReceiptNumber: "rcpt-" + uuid.NewString()[:8],
		BookingRef:    b.Reference,
		IssuedAt:      time.Now(),
		Totals:        totals,
		GSTInclusive:  b.ChargesGST,
	}, nil
}

// paid and every status reachable from it.
func paidFamily(status string) bool {
	switch booking.Status(status) {
	case booking.StatusPaid, booking.StatusCompleted, booking.StatusDisputed, booking.StatusRefunded:
		return true
	}
	return false
}

// ExportEarningsXLSX renders a provider's earnings history as a spreadsheet.
func (s *Service) ExportEarningsXLSX(ctx context.Context, providerID int) ([]byte, error) {
	earnings, err := s.earningRepo.FindByProviderID(ctx, providerID)
	if err != nil {
		zap.L().Error("can't fetch earnings for export", zap.Error(err))
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			zap.L().Error("can't close xlsx file", zap.Error(err))
		}
	}()

	const sheet = "Earnings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Booking ID", "Date", "Gross", "Platform Fee", "GST", "Net", "Refunded"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	var totalGross, totalNet money.Cents
	for row, e := range earnings {
		values := []interface{}{
			e.BookingID,
			e.CreatedAt.Format("2006-01-02"),
			e.Gross.Dollars(),
			e.PlatformFee.Dollars(),
			e.GSTAmount.Dollars(),
			e.Net.Dollars(),
			e.Refunded.Dollars(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		totalGross += e.Gross
		totalNet += e.Net - e.Refunded
	}

	summaryRow := len(earnings) + 3
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Totals"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", summaryRow), totalGross.Dollars()); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("F%d", summaryRow), totalNet.Dollars()); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		zap.L().Error("can't serialize xlsx", zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}
