package report

import (
	"github.com/shopspring/decimal"

	"transportreports/models"
)

// Totals aggregates a set of records. Money and weights are exact decimals.
type Totals struct {
	Records      int             `json:"records"`
	Article      int             `json:"totalArticle"`
	Weight       decimal.Decimal `json:"totalWeight"`
	ChargeWeight decimal.Decimal `json:"totalChargeWeight"`
	ToPay        decimal.Decimal `json:"totalFreightToPay"`
	Paid         decimal.Decimal `json:"totalFreightPaid"`
	TBB          decimal.Decimal `json:"totalFreightTBB"`
}

// Freight is the collectible amount across the three payment buckets.
func (t Totals) Freight() decimal.Decimal {
	return t.ToPay.Add(t.Paid).Add(t.TBB)
}

// Add returns the field-wise sum of t and o.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Records:      t.Records + o.Records,
		Article:      t.Article + o.Article,
		Weight:       t.Weight.Add(o.Weight),
		ChargeWeight: t.ChargeWeight.Add(o.ChargeWeight),
		ToPay:        t.ToPay.Add(o.ToPay),
		Paid:         t.Paid.Add(o.Paid),
		TBB:          t.TBB.Add(o.TBB),
	}
}

// Accumulate totals the detail lines and grand totals of records. Grand totals
// with a payment type other than to-pay, paid or TBB are not bucketed.
func Accumulate(records []Record) Totals {
	var t Totals
	for _, r := range records {
		t.Records++
		for _, d := range r.Details {
			t.Article += d.Article
			t.Weight = t.Weight.Add(d.Weight)
			t.ChargeWeight = t.ChargeWeight.Add(d.ChargeWeight)
		}
		switch r.PaymentType {
		case models.PaymentToPay:
			t.ToPay = t.ToPay.Add(r.GrandTotal)
		case models.PaymentPaid:
			t.Paid = t.Paid.Add(r.GrandTotal)
		case models.PaymentTBB:
			t.TBB = t.TBB.Add(r.GrandTotal)
		}
	}
	return t
}
