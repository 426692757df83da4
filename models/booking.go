package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType is the freight payment responsibility of a booking.
type PaymentType int

const (
	PaymentToPay PaymentType = 1
	PaymentPaid  PaymentType = 2
	PaymentTBB   PaymentType = 3
)

func (p PaymentType) String() string {
	switch p {
	case PaymentToPay:
		return "To Pay"
	case PaymentPaid:
		return "Paid"
	case PaymentTBB:
		return "TBB"
	default:
		return ""
	}
}

// Booking is one consignment line (LR) as supplied by the booking store.
// Bookings are read-only once fetched; reports share them freely.
type Booking struct {
	ID             int64           `json:"id" bson:"_id" db:"id"`
	LRNumber       string          `json:"lrNumber" bson:"lr_number" db:"lr_number"`
	FromBranchID   int64           `json:"fromBranchId" bson:"from_branch_id" db:"from_branch_id"`
	FromBranchName string          `json:"fromBranchName" bson:"from_branch_name" db:"from_branch_name"`
	ToBranchID     int64           `json:"toBranchId" bson:"to_branch_id" db:"to_branch_id"`
	ToBranchName   string          `json:"toBranchName" bson:"to_branch_name" db:"to_branch_name"`
	BookingDate    time.Time       `json:"bookingDate" bson:"booking_date" db:"booking_date"`
	PrivateMark    string          `json:"privateMark" bson:"private_mark" db:"private_mark"`
	PaymentType    PaymentType     `json:"paymentType" bson:"payment_type" db:"payment_type"`
	GrandTotal     decimal.Decimal `json:"grandTotal" bson:"-" db:"grand_total"`
	EwayBillNo     string          `json:"ewayBillNo,omitempty" bson:"eway_bill_no" db:"eway_bill_no"`
	Details        []BookingDetail `json:"bookingDetails" bson:"-"`
}

// BookingDetail is a goods line of a booking.
type BookingDetail struct {
	ID           int64           `json:"id" db:"id"`
	BookingID    int64           `json:"bookingId" db:"booking_id"`
	Article      int             `json:"article" db:"article"`
	Weight       decimal.Decimal `json:"weight" db:"weight"`
	ChargeWeight decimal.Decimal `json:"chargeWeight" db:"charge_weight"`
	GoodsType    string          `json:"goodsType" db:"goods_type"`
	Shape        string          `json:"shape" db:"shape"`
}
