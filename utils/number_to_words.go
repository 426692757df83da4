package utils

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("amount in words: negative amount")

var ones = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// teens starts at eleven; ten is handled on its own.
var teens = []string{
	"eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// below1000 spells 0-999; zero spells as "".
func below1000(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return ones[n]
	case n == 10:
		return "ten"
	case n < 20:
		return teens[n-11]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + " " + ones[n%10]
	default:
		remainder := n % 100
		if remainder == 0 {
			return ones[n/100] + " hundred"
		}
		return ones[n/100] + " hundred and " + below1000(remainder)
	}
}

// indianWords spells n with crore, lakh and thousand groups. Crores above 999
// are spelt recursively, e.g. "one thousand crore".
func indianWords(n int64) string {
	var parts []string
	if crore := n / 10000000; crore > 0 {
		parts = append(parts, indianWords(crore)+" crore")
	}
	if lakh := n / 100000 % 100; lakh > 0 {
		parts = append(parts, below1000(lakh)+" lakh")
	}
	if thousand := n / 1000 % 100; thousand > 0 {
		parts = append(parts, below1000(thousand)+" thousand")
	}
	if units := n % 1000; units > 0 {
		parts = append(parts, below1000(units))
	}
	return strings.Join(parts, " ")
}

// NumberToWords spells whole rupees for printing, e.g. 123 gives
// "one hundred and twenty three rupees only". Zero gives "rupees only".
func NumberToWords(num int64) (string, error) {
	if num < 0 {
		return "", ErrNegativeAmount
	}
	return strings.TrimSpace(indianWords(num) + " rupees only"), nil
}

// AmountInWords rounds amount to whole rupees and spells it.
func AmountInWords(amount decimal.Decimal) (string, error) {
	return NumberToWords(amount.Round(0).IntPart())
}

// SignedAmountInWords is AmountInWords for amounts that may be negative, such
// as a hire slip balance after an excess advance: "minus ... rupees only".
func SignedAmountInWords(amount decimal.Decimal) string {
	rupees := amount.Round(0)
	words, _ := NumberToWords(rupees.Abs().IntPart())
	if rupees.IsNegative() {
		return "minus " + words
	}
	return words
}
