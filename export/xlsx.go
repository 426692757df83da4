package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"transportreports/report"
)

const (
	bodySheet    = "Bookings"
	summarySheet = "Summary"
)

var bodyHeader = []any{"Page", "Sr", "LR No", "Date", "Destination", "Pvt. Mark", "Payment", "Articles", "Weight", "Charge Weight", "Amount"}

var summaryHeader = []any{"Destination", "LRs", "Articles", "Weight", "Charge Weight", "To Pay", "Paid", "TBB", "Total"}

// XLSX writes rep as a workbook: one row per booking in printed order, and a
// summary sheet for the variants that have one.
func XLSX(rep report.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", bodySheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(bodySheet, "A1", &bodyHeader); err != nil {
		return nil, err
	}
	line := 2
	for _, p := range rep.Pages {
		for _, r := range p.Records() {
			date := ""
			if !r.BookingDate.IsZero() {
				date = r.BookingDate.Format("02-01-2006")
			}
			row := []any{
				p.Number, r.Seq, r.LR, date, r.ToBranchName, r.PrivateMark, r.PaymentType.String(),
				r.Articles(), r.Weight().InexactFloat64(), r.ChargeWeight().InexactFloat64(), r.GrandTotal.InexactFloat64(),
			}
			if err := f.SetSheetRow(bodySheet, cell(line), &row); err != nil {
				return nil, err
			}
			line++
		}
	}
	if t := rep.Totals; t != nil {
		row := []any{
			"Total", t.Records, nil, nil, nil, nil, nil,
			t.Article, t.Weight.InexactFloat64(), t.ChargeWeight.InexactFloat64(), t.Freight().InexactFloat64(),
		}
		if err := f.SetSheetRow(bodySheet, cell(line), &row); err != nil {
			return nil, err
		}
	}

	if len(rep.Summary) > 0 {
		if _, err := f.NewSheet(summarySheet); err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summarySheet, "A1", &summaryHeader); err != nil {
			return nil, err
		}
		line := 2
		for _, s := range rep.Summary {
			row := totalsRow(s.Destination, s.Totals)
			if err := f.SetSheetRow(summarySheet, cell(line), &row); err != nil {
				return nil, err
			}
			line++
		}
		if rep.GrandTotal != nil {
			row := totalsRow("Grand Total", *rep.GrandTotal)
			if err := f.SetSheetRow(summarySheet, cell(line), &row); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func totalsRow(label string, t report.Totals) []any {
	return []any{
		label, t.Records, t.Article, t.Weight.InexactFloat64(), t.ChargeWeight.InexactFloat64(),
		t.ToPay.InexactFloat64(), t.Paid.InexactFloat64(), t.TBB.InexactFloat64(), t.Freight().InexactFloat64(),
	}
}

func cell(row int) string {
	return fmt.Sprintf("A%d", row)
}
