package templates

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"transportreports/models"
	"transportreports/report"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"qty":   func(d decimal.Decimal) string { return d.String() },
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("02-Jan-2006")
	},
	"px": func(f float64) template.CSS { return template.CSS(decimal.NewFromFloat(f).StringFixed(0) + "px") },
}

var tmpl = template.Must(template.New("reports").Funcs(funcs).ParseFS(files, "*.html"))

// ReportData is everything the report print template needs.
type ReportData struct {
	Company    *models.Company
	Memo       *models.LoadingMemo
	Contacts   string
	Date       string
	Title      string
	TotalWords string
	Report     report.Report
	Summary    report.SummaryLayout
}

// RenderReport renders a full report, one .sheet per printed page.
func RenderReport(data ReportData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "report.html", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderSummaryRows renders bare summary rows with the print styles, for measuring.
func RenderSummaryRows(rows []report.SummaryRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "summary_rows.html", rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
