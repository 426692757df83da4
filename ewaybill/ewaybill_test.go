package ewaybill

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transportreports/models"
	"transportreports/report"
)

func TestMessage(t *testing.T) {
	msg, ok := Message(312)
	require.True(t, ok)
	assert.Contains(t, msg, "cancelled")

	_, ok = Message(99999)
	assert.False(t, ok)
}

func TestCodesSorted(t *testing.T) {
	codes := Codes()
	require.NotEmpty(t, codes)
	assert.IsIncreasing(t, codes)
	assert.Equal(t, 100, codes[0])
}

func TestDescribe(t *testing.T) {
	errs := Describe("312, 238,abc,")

	require.Len(t, errs, 2)
	assert.Equal(t, 312, errs[0].Code)
	assert.Equal(t, "Unknown error code 238", errs[1].Message)
	assert.Empty(t, Describe(""))
}

func TestBuildConsolidated(t *testing.T) {
	records, err := report.IndexRecords([]models.Booking{
		{LRNumber: "30", EwayBillNo: "331000000003"},
		{LRNumber: "10", EwayBillNo: "331000000001"},
		{LRNumber: "20"},
		{LRNumber: "40", EwayBillNo: " 331000000001 "},
	}, 1)
	require.NoError(t, err)
	memo := models.LoadingMemo{
		LDMNo:         "LDM-12",
		VehicleNo:     "gj 01 ab 1234",
		FromBranch:    "Ahmedabad",
		FromStateCode: 24,
		Date:          time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	req, err := BuildConsolidated(memo, records)

	require.NoError(t, err)
	assert.Equal(t, "GJ01AB1234", req.VehicleNo)
	assert.Equal(t, "04/03/2026", req.TransDocDate)
	assert.Equal(t, 24, req.FromState)
	assert.Equal(t, []TripSheetBill{{EwbNo: "331000000001"}, {EwbNo: "331000000003"}}, req.TripSheetEwbBills)
}

func TestBuildConsolidatedWithoutBills(t *testing.T) {
	records, err := report.IndexRecords([]models.Booking{{LRNumber: "1"}}, 1)
	require.NoError(t, err)

	_, err = BuildConsolidated(models.LoadingMemo{}, records)
	assert.ErrorIs(t, err, ErrNoEwayBills)
}
