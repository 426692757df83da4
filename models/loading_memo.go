package models

import "time"

// LoadingMemo is the header of an LDM: one vehicle trip and the bookings loaded on it.
type LoadingMemo struct {
	ID                     int64     `json:"id" bson:"_id" db:"id"`
	LDMNo                  string    `json:"ldmNo" bson:"ldm_no" db:"ldm_no"`
	VehicleNo              string    `json:"vehicleNo" bson:"vehicle_no" db:"vehicle_no"`
	DriverName             string    `json:"driverName" bson:"driver_name" db:"driver_name"`
	DriverMobile           string    `json:"driverMobile,omitempty" bson:"driver_mobile" db:"driver_mobile"`
	FromBranch             string    `json:"fromBranch" bson:"from_branch" db:"from_branch"`
	FromStateCode          int       `json:"fromStateCode,omitempty" bson:"from_state_code" db:"from_state_code"`
	ToBranch               string    `json:"toBranch" bson:"to_branch" db:"to_branch"`
	Date                   time.Time `json:"date" bson:"date" db:"date"`
	ConsolidatedEwayBillNo *string   `json:"consolidatedEwayBillNo,omitempty" bson:"consolidated_eway_bill_no,omitempty" db:"consolidated_eway_bill_no"`
	BookingIDs             []int64   `json:"bookingIds" bson:"booking_ids"`
	CreatedAt              time.Time `json:"createdAt" bson:"created_at" db:"created_at"`
}
