package report

import (
	"github.com/shopspring/decimal"

	"transportreports/models"
)

// SumCharges adds the charge amounts exactly.
func SumCharges(charges []models.Charge) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range charges {
		sum = sum.Add(c.Amount)
	}
	return sum
}

// CashMemoTotals is the printed breakdown of a cash memo.
type CashMemoTotals struct {
	Freight  decimal.Decimal `json:"freight"`
	Charges  decimal.Decimal `json:"charges"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// CashMemoTotal is freight plus all charges less the discount.
func CashMemoTotal(m models.CashMemo) CashMemoTotals {
	charges := SumCharges(m.Charges)
	return CashMemoTotals{
		Freight:  m.Freight,
		Charges:  charges,
		Discount: m.Discount,
		Total:    m.Freight.Add(charges).Sub(m.Discount),
	}
}

// HireSlipBreakdown is the printed breakdown of a hire slip.
type HireSlipBreakdown struct {
	Hire    decimal.Decimal `json:"hire"`
	Extras  decimal.Decimal `json:"extras"`
	Gross   decimal.Decimal `json:"gross"`
	Advance decimal.Decimal `json:"advance"`
	TDS     decimal.Decimal `json:"tds"`
	Balance decimal.Decimal `json:"balance"`
}

// HireSlipTotals computes the balance payable to the lorry owner.
func HireSlipTotals(s models.HireSlip) HireSlipBreakdown {
	extras := SumCharges(s.Extras)
	gross := s.HireAmount.Add(extras)
	return HireSlipBreakdown{
		Hire:    s.HireAmount,
		Extras:  extras,
		Gross:   gross,
		Advance: s.Advance,
		TDS:     s.TDS,
		Balance: gross.Sub(s.Advance).Sub(s.TDS),
	}
}
