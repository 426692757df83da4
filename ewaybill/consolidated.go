package ewaybill

import (
	"errors"
	"strings"
	"time"

	"transportreports/models"
	"transportreports/report"
)

// Road is the only transport mode a loading memo trip uses.
const TransModeRoad = "1"

var ErrNoEwayBills = errors.New("no e-way bills on the loading memo")

// TripSheetBill is one shipment e-way bill on a trip sheet.
type TripSheetBill struct {
	EwbNo string `json:"ewbNo"`
}

// ConsolidatedRequest is the payload for generating a consolidated e-way bill.
type ConsolidatedRequest struct {
	FromPlace         string          `json:"fromPlace"`
	FromState         int             `json:"fromState"`
	VehicleNo         string          `json:"vehicleNo"`
	TransMode         string          `json:"transMode"`
	TransDocNo        string          `json:"transDocNo"`
	TransDocDate      string          `json:"transDocDate"`
	TripSheetEwbBills []TripSheetBill `json:"tripSheetEwbBills"`
}

// BuildConsolidated collects the distinct e-way bill numbers of records in LR
// order into a trip sheet for memo's vehicle.
func BuildConsolidated(memo models.LoadingMemo, records []report.Record) (ConsolidatedRequest, error) {
	seen := make(map[string]bool)
	var bills []TripSheetBill
	for _, r := range report.SortByLR(records) {
		ewb := strings.TrimSpace(r.EwayBillNo)
		if ewb == "" || seen[ewb] {
			continue
		}
		seen[ewb] = true
		bills = append(bills, TripSheetBill{EwbNo: ewb})
	}
	if len(bills) == 0 {
		return ConsolidatedRequest{}, ErrNoEwayBills
	}

	date := memo.Date
	if date.IsZero() {
		date = time.Now()
	}
	return ConsolidatedRequest{
		FromPlace:         memo.FromBranch,
		FromState:         memo.FromStateCode,
		VehicleNo:         strings.ToUpper(strings.ReplaceAll(memo.VehicleNo, " ", "")),
		TransMode:         TransModeRoad,
		TransDocNo:        memo.LDMNo,
		TransDocDate:      date.Format("02/01/2006"),
		TripSheetEwbBills: bills,
	}, nil
}
