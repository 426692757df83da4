package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"transportreports/models"
)

func TestCashMemoTotal(t *testing.T) {
	memo := models.CashMemo{
		Freight: dec("1250.50"),
		Charges: []models.Charge{
			{Label: "Hamali", Amount: dec("40.10")},
			{Label: "Door delivery", Amount: dec("59.90")},
		},
		Discount: dec("0.50"),
	}

	totals := CashMemoTotal(memo)

	assert.Equal(t, "100", totals.Charges.String())
	assert.Equal(t, "1350", totals.Total.String())
}

func TestHireSlipTotals(t *testing.T) {
	slip := models.HireSlip{
		HireAmount: dec("18000"),
		Extras:     []models.Charge{{Label: "Toll", Amount: dec("450.25")}},
		Advance:    dec("10000"),
		TDS:        dec("180"),
	}

	got := HireSlipTotals(slip)

	assert.Equal(t, "18450.25", got.Gross.String())
	assert.Equal(t, "8270.25", got.Balance.String())
}

func TestSumChargesEmpty(t *testing.T) {
	assert.True(t, SumCharges(nil).IsZero())
}
