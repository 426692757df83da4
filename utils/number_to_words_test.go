package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "rupees only"},
		{7, "seven rupees only"},
		{10, "ten rupees only"},
		{11, "eleven rupees only"},
		{19, "nineteen rupees only"},
		{20, "twenty rupees only"},
		{45, "forty five rupees only"},
		{100, "one hundred rupees only"},
		{110, "one hundred and ten rupees only"},
		{123, "one hundred and twenty three rupees only"},
		{1000, "one thousand rupees only"},
		{21010, "twenty one thousand ten rupees only"},
		{100000, "one lakh rupees only"},
		{250075, "two lakh fifty thousand seventy five rupees only"},
		{10000000, "one crore rupees only"},
		{123456789, "twelve crore thirty four lakh fifty six thousand seven hundred and eighty nine rupees only"},
		{10000000000, "one thousand crore rupees only"},
	}
	for _, tt := range tests {
		got, err := NumberToWords(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNumberToWordsRejectsNegative(t *testing.T) {
	_, err := NumberToWords(-1)
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestAmountInWords(t *testing.T) {
	got, err := AmountInWords(decimal.RequireFromString("1499.50"))
	require.NoError(t, err)
	assert.Equal(t, "one thousand five hundred rupees only", got)

	got, err = AmountInWords(decimal.RequireFromString("19.49"))
	require.NoError(t, err)
	assert.Equal(t, "nineteen rupees only", got)
}

func TestSignedAmountInWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"400", "four hundred rupees only"},
		{"-2000", "minus two thousand rupees only"},
		{"-50.6", "minus fifty one rupees only"},
		{"-0.4", "rupees only"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SignedAmountInWords(decimal.RequireFromString(tt.in)), tt.in)
	}
}
