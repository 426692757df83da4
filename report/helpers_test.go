package report

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"transportreports/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func booking(lr int, dest int64, name string, pt models.PaymentType, total string) models.Booking {
	return models.Booking{
		ID:           int64(lr),
		LRNumber:     strconv.Itoa(lr),
		ToBranchID:   dest,
		ToBranchName: name,
		PaymentType:  pt,
		GrandTotal:   dec(total),
		Details: []models.BookingDetail{
			{Article: 2, Weight: dec("10.5"), ChargeWeight: dec("12.1")},
		},
	}
}

func mustIndex(t *testing.T, bookings []models.Booking) []Record {
	t.Helper()
	records, err := IndexRecords(bookings, 1)
	require.NoError(t, err)
	return records
}

func lrs(records []Record) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.LR
	}
	return out
}
