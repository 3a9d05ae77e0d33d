package money

import (
	"errors"
	"fmt"
)

// Cents is an amount in minor currency units. All marketplace arithmetic is
// integer arithmetic on this type; floats appear only at display boundaries.
type Cents int64

func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// Rates carries the fee parameters in basis points. Injected from config so
// the calculator never reads ambient state.
type Rates struct {
	PlatformFeeBps int64
	GSTBps         int64
}

var (
	ErrNegativeValue = errors.New("negative value")
	ErrNegativeNet   = errors.New("net amount negative")
)

type EarningsInput struct {
	Amount     Cents
	ChargesGST bool
	Rates      Rates
}

type Earnings struct {
	GrossAmount       Cents `json:"gross_amount"`
	PlatformFeeAmount Cents `json:"platform_fee_amount"`
	GSTAmount         Cents `json:"gst_amount"`
	NetAmount         Cents `json:"net_amount"`
}

// CalculateEarnings splits a gross charge into platform fee, GST component
// and provider net.
//
// The fee is rounded up so integer truncation never under-collects. When the
// price is GST-inclusive the GST component is back-calculated: a gross that
// already contains GST at rate r holds gross*r/(1+r) of tax, hence the
// division by 10000+gstBps rather than 10000.
func CalculateEarnings(in EarningsInput) (Earnings, error) {
	if in.Amount < 0 {
		return Earnings{}, fmt.Errorf("%w: amount %d", ErrNegativeValue, in.Amount)
	}
	if in.Rates.PlatformFeeBps < 0 {
		return Earnings{}, fmt.Errorf("%w: platform fee bps %d", ErrNegativeValue, in.Rates.PlatformFeeBps)
	}
	if in.Rates.GSTBps < 0 {
		return Earnings{}, fmt.Errorf("%w: gst bps %d", ErrNegativeValue, in.Rates.GSTBps)
	}

	amount := int64(in.Amount)
	fee := (amount*in.Rates.PlatformFeeBps + 9999) / 10000

	var gst int64
	if in.ChargesGST && in.Rates.GSTBps > 0 {
		denom := 10000 + in.Rates.GSTBps
		gst = (amount*in.Rates.GSTBps + denom/2) / denom
	}

	net := amount - fee - gst
	if net < 0 {
		return Earnings{}, fmt.Errorf("%w: gross %d, fee %d, gst %d", ErrNegativeNet, amount, fee, gst)
	}

	return Earnings{
		GrossAmount:       in.Amount,
		PlatformFeeAmount: Cents(fee),
		GSTAmount:         Cents(gst),
		NetAmount:         Cents(net),
	}, nil
}

type BookingTotalsInput struct {
	Price          Cents
	ChargesGST     bool
	RefundedAmount Cents
	Rates          Rates
}

type BookingTotals struct {
	Gross          Cents `json:"gross"`
	PlatformFee    Cents `json:"platform_fee"`
	GSTAmount      Cents `json:"gst_amount"`
	NetToProvider  Cents `json:"net_to_provider"`
	TotalPaid      Cents `json:"total_paid"`
	RefundedAmount Cents `json:"refunded_amount"`
}

// CalculateBookingTotals wraps CalculateEarnings with refund accounting.
// Refunds are applied against the provider net only; collected platform fee
// and GST are not reversed.
func CalculateBookingTotals(in BookingTotalsInput) (BookingTotals, error) {
	refunded := in.RefundedAmount
	if refunded < 0 {
		refunded = 0
	}

	earnings, err := CalculateEarnings(EarningsInput{
		Amount:     in.Price,
		ChargesGST: in.ChargesGST,
		Rates:      in.Rates,
	})
	if err != nil {
		return BookingTotals{}, err
	}

	totalPaid := earnings.GrossAmount - refunded
	if totalPaid < 0 {
		totalPaid = 0
	}
	netToProvider := earnings.NetAmount - refunded
	if netToProvider < 0 {
		netToProvider = 0
	}

	return BookingTotals{
		Gross:          earnings.GrossAmount,
		PlatformFee:    earnings.PlatformFeeAmount,
		GSTAmount:      earnings.GSTAmount,
		NetToProvider:  netToProvider,
		TotalPaid:      totalPaid,
		RefundedAmount: refunded,
	}, nil
}
