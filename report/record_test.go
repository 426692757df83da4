package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transportreports/models"
)

func TestIndexRecords(t *testing.T) {
	bookings := []models.Booking{
		{LRNumber: "105"},
		{LRNumber: " 7 "},
		{LRNumber: "42"},
	}

	records, err := IndexRecords(bookings, 1)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{records[0].Seq, records[1].Seq, records[2].Seq})
	assert.Equal(t, []int64{105, 7, 42}, lrs(records))
	assert.Same(t, &bookings[1], records[1].Booking)

	zero, err := IndexRecords(bookings, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, zero[0].Seq)
}

func TestIndexRecordsRejectsMalformedLR(t *testing.T) {
	_, err := IndexRecords([]models.Booking{{LRNumber: "12"}, {LRNumber: "A-13"}, {LRNumber: ""}}, 1)

	var lrErr *InvalidLRError
	require.ErrorAs(t, err, &lrErr)
	assert.Equal(t, []string{"A-13", ""}, lrErr.LRNumbers)
	assert.Contains(t, err.Error(), `"A-13"`)
}

func TestIndexRecordsEmpty(t *testing.T) {
	records, err := IndexRecords(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordDetailSums(t *testing.T) {
	b := booking(1, 1, "A", models.PaymentPaid, "1")
	b.Details = append(b.Details, models.BookingDetail{Article: 3, Weight: dec("0.25"), ChargeWeight: dec("1")})
	r := mustIndex(t, []models.Booking{b})[0]

	assert.Equal(t, 5, r.Articles())
	assert.Equal(t, "10.75", r.Weight().String())
	assert.Equal(t, "13.1", r.ChargeWeight().String())
}
