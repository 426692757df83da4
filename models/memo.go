package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Charge is a labelled amount on a cash memo or hire slip.
type Charge struct {
	Label  string          `json:"label" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// CashMemo is the delivery receipt handed over with the goods.
type CashMemo struct {
	MemoNo    string          `json:"memoNo" validate:"required"`
	LRNumber  string          `json:"lrNumber" validate:"required"`
	Date      time.Time       `json:"date"`
	Freight   decimal.Decimal `json:"freight"`
	Charges   []Charge        `json:"charges" validate:"dive"`
	Discount  decimal.Decimal `json:"discount"`
	Consignee string          `json:"consignee"`
}

// HireSlip is the payment voucher for a hired lorry.
type HireSlip struct {
	SlipNo     string          `json:"slipNo" validate:"required"`
	VehicleNo  string          `json:"vehicleNo" validate:"required"`
	Date       time.Time       `json:"date"`
	HireAmount decimal.Decimal `json:"hireAmount"`
	Extras     []Charge        `json:"extras" validate:"dive"`
	Advance    decimal.Decimal `json:"advance"`
	TDS        decimal.Decimal `json:"tds"`
}
