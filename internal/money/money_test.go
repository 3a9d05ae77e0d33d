package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var defaultRates = Rates{PlatformFeeBps: 1000, GSTBps: 1500}

func TestCalculateEarnings(t *testing.T) {
	tests := []struct {
		name      string
		input     EarningsInput
		expected  Earnings
		expectErr error
	}{
		{
			name:  "GST-exclusive price",
			input: EarningsInput{Amount: 10000, ChargesGST: false, Rates: defaultRates},
			expected: Earnings{
				GrossAmount:       10000,
				PlatformFeeAmount: 1000,
				GSTAmount:         0,
				NetAmount:         9000,
			},
		},
		{
			name:  "GST-inclusive back-calculation",
			input: EarningsInput{Amount: 11500, ChargesGST: true, Rates: defaultRates},
			expected: Earnings{
				GrossAmount:       11500,
				PlatformFeeAmount: 1150,
				GSTAmount:         1500,
				NetAmount:         8850,
			},
		},
		{
			name:  "Fee rounds up",
			input: EarningsInput{Amount: 999, ChargesGST: false, Rates: defaultRates},
			expected: Earnings{
				GrossAmount:       999,
				PlatformFeeAmount: 100,
				GSTAmount:         0,
				NetAmount:         899,
			},
		},
		{
			name:  "Zero amount",
			input: EarningsInput{Amount: 0, ChargesGST: true, Rates: defaultRates},
			expected: Earnings{
				GrossAmount:       0,
				PlatformFeeAmount: 0,
				GSTAmount:         0,
				NetAmount:         0,
			},
		},
		{
			name:  "Zero rates",
			input: EarningsInput{Amount: 5000, ChargesGST: true, Rates: Rates{}},
			expected: Earnings{
				GrossAmount: 5000,
				NetAmount:   5000,
			},
		},
		{
			name:      "Negative amount",
			input:     EarningsInput{Amount: -1, ChargesGST: false, Rates: defaultRates},
			expectErr: ErrNegativeValue,
		},
		{
			name:      "Negative fee bps",
			input:     EarningsInput{Amount: 100, Rates: Rates{PlatformFeeBps: -1, GSTBps: 1500}},
			expectErr: ErrNegativeValue,
		},
		{
			name:      "Negative gst bps",
			input:     EarningsInput{Amount: 100, Rates: Rates{PlatformFeeBps: 1000, GSTBps: -1}},
			expectErr: ErrNegativeValue,
		},
		{
			name:      "Fee exceeding gross",
			input:     EarningsInput{Amount: 100, ChargesGST: false, Rates: Rates{PlatformFeeBps: 11000}},
			expectErr: ErrNegativeNet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateEarnings(tt.input)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCalculateEarningsIsPure(t *testing.T) {
	in := EarningsInput{Amount: 12345, ChargesGST: true, Rates: defaultRates}
	first, err := CalculateEarnings(in)
	assert.NoError(t, err)
	second, err := CalculateEarnings(in)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, first.GrossAmount, first.PlatformFeeAmount+first.GSTAmount+first.NetAmount)
}

func TestCalculateBookingTotals(t *testing.T) {
	tests := []struct {
		name      string
		input     BookingTotalsInput
		expected  BookingTotals
		expectErr error
	}{
		{
			name:  "No refund",
			input: BookingTotalsInput{Price: 10000, ChargesGST: false, Rates: defaultRates},
			expected: BookingTotals{
				Gross:         10000,
				PlatformFee:   1000,
				NetToProvider: 9000,
				TotalPaid:     10000,
			},
		},
		{
			name:  "Partial refund hits provider net only",
			input: BookingTotalsInput{Price: 10000, ChargesGST: false, RefundedAmount: 2000, Rates: defaultRates},
			expected: BookingTotals{
				Gross:          10000,
				PlatformFee:    1000,
				NetToProvider:  7000,
				TotalPaid:      8000,
				RefundedAmount: 2000,
			},
		},
		{
			name:  "Refund above gross clamps to zero",
			input: BookingTotalsInput{Price: 10000, ChargesGST: false, RefundedAmount: 15000, Rates: defaultRates},
			expected: BookingTotals{
				Gross:          10000,
				PlatformFee:    1000,
				NetToProvider:  0,
				TotalPaid:      0,
				RefundedAmount: 15000,
			},
		},
		{
			name:  "Negative refund treated as zero",
			input: BookingTotalsInput{Price: 10000, ChargesGST: false, RefundedAmount: -500, Rates: defaultRates},
			expected: BookingTotals{
				Gross:         10000,
				PlatformFee:   1000,
				NetToProvider: 9000,
				TotalPaid:     10000,
			},
		},
		{
			name:  "GST-inclusive with refund",
			input: BookingTotalsInput{Price: 11500, ChargesGST: true, RefundedAmount: 1000, Rates: defaultRates},
			expected: BookingTotals{
				Gross:          11500,
				PlatformFee:    1150,
				GSTAmount:      1500,
				NetToProvider:  7850,
				TotalPaid:      10500,
				RefundedAmount: 1000,
			},
		},
		{
			name:      "Negative price",
			input:     BookingTotalsInput{Price: -1, Rates: defaultRates},
			expectErr: ErrNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateBookingTotals(tt.input)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCentsDollars(t *testing.T) {
	assert.Equal(t, 123.45, Cents(12345).Dollars())
	assert.Equal(t, 0.0, Cents(0).Dollars())
}
