package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "ZERO RUPEES ONLY."},
		{"one", 1, "ONE RUPEES ONLY."},
		{"teens boundary", 19, "NINETEEN RUPEES ONLY."},
		{"twenty", 20, "TWENTY RUPEES ONLY."},
		{"ninety nine", 99, "NINETY NINE RUPEES ONLY."},
		{"hundred", 100, "ONE HUNDRED RUPEES ONLY."},
		{"and inserted before trailing remainder", 236, "TWO HUNDRED AND THIRTY SIX RUPEES ONLY."},
		{"thousand", 1000, "ONE THOUSAND RUPEES ONLY."},
		{"lakh", 100000, "ONE LAKH RUPEES ONLY."},
		{"crore", 10000000, "ONE CRORE RUPEES ONLY."},
		{"max supported", 999999999, "NINETY NINE CRORE NINETY NINE LAKH NINETY NINE THOUSAND NINE HUNDRED AND NINETY NINE RUPEES ONLY."},
		{"mixed groups", 1234567, "TWELVE LAKH THIRTY FOUR THOUSAND FIVE HUNDRED AND SIXTY SEVEN RUPEES ONLY."},
		{"no and without higher group", 45, "FORTY FIVE RUPEES ONLY."},
		{"hundred with zero remainder has no and", 500, "FIVE HUNDRED RUPEES ONLY."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInWords(tt.amount))
		})
	}
}

func TestAmountInWordsTruncatesPaise(t *testing.T) {
	assert.Equal(t, "TWO HUNDRED AND THIRTY SIX RUPEES ONLY.", AmountInWords(236.49))
	// Rounding to two decimals happens before truncation, so .999 carries up.
	assert.Equal(t, "TWO HUNDRED AND THIRTY SIX RUPEES ONLY.", AmountInWords(235.999))
	assert.Equal(t, "ZERO RUPEES ONLY.", AmountInWords(0.99))
}

func TestAmountInWordsNeverPanicsOnBadAmounts(t *testing.T) {
	// Malformed line-item input can produce negative or NaN grand totals;
	// those invoices must still render on every read.
	assert.Equal(t, "ZERO RUPEES ONLY.", AmountInWords(-5))
	assert.Equal(t, "ZERO RUPEES ONLY.", AmountInWords(-0.49))
	assert.Equal(t, "ZERO RUPEES ONLY.", AmountInWords(-999999999))
	assert.Equal(t, "ZERO RUPEES ONLY.", AmountInWords(math.NaN()))
}

func TestAmountInWordsTooLarge(t *testing.T) {
	assert.Equal(t, TooLargeSentinel, AmountInWords(1000000000))
	assert.Equal(t, TooLargeSentinel, AmountInWords(999999999.996))
}
