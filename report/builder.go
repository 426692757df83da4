package report

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names a report variant.
type Kind string

const (
	KindManifest Kind = "ldm"
	KindMotor    Kind = "gdm"
	KindTransit  Kind = "transit"
)

// Page sizes. Every page prints two columns of half the page size.
const (
	ManifestPageSize = 50
	MotorPageSize    = 24
)

var ErrUnknownKind = errors.New("unknown report kind")

// ParseKind accepts the short names and their long aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ldm", "manifest":
		return KindManifest, nil
	case "gdm", "motor":
		return KindMotor, nil
	case "transit":
		return KindTransit, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) Title() string {
	switch k {
	case KindManifest:
		return "Loading Memo"
	case KindMotor:
		return "Motor Report"
	case KindTransit:
		return "Transit Report"
	}
	return string(k)
}

// Row is a printed body line. ShowDestination is set where the destination
// heading has to be printed above the row.
type Row struct {
	Record
	ShowDestination bool `json:"showDestination"`
}

// Page is one printable sheet.
type Page struct {
	Number int   `json:"number"`
	Left   []Row `json:"left"`
	Right  []Row `json:"right"`
	Last   bool  `json:"last"`
}

// Lines is the number of printed body lines, the longer of the two columns.
// A destination heading takes a line of its own.
func (p Page) Lines() int {
	return max(columnLines(p.Left), columnLines(p.Right))
}

func columnLines(rows []Row) int {
	n := len(rows)
	for _, r := range rows {
		if r.ShowDestination {
			n++
		}
	}
	return n
}

// Records returns the page's records, left column first.
func (p Page) Records() []Record {
	out := make([]Record, 0, len(p.Left)+len(p.Right))
	for _, r := range p.Left {
		out = append(out, r.Record)
	}
	for _, r := range p.Right {
		out = append(out, r.Record)
	}
	return out
}

// SummaryRow reduces one destination group to its totals.
type SummaryRow struct {
	BranchID    int64  `json:"branchId"`
	Destination string `json:"destination"`
	Totals
}

// Report is a built, not yet summary-paginated, report.
type Report struct {
	Kind       Kind         `json:"kind"`
	Pages      []Page       `json:"pages"`
	Totals     *Totals      `json:"totals,omitempty"`
	Summary    []SummaryRow `json:"summary,omitempty"`
	GrandTotal *Totals      `json:"grandTotal,omitempty"`
}

// HasSummary reports whether the variant prints the grouped summary.
func (k Kind) HasSummary() bool {
	return k == KindMotor || k == KindTransit
}

// Build dispatches to the builder for kind.
func Build(kind Kind, records []Record) (Report, error) {
	switch kind {
	case KindManifest:
		return BuildManifest(records), nil
	case KindMotor:
		return BuildMotorReport(records), nil
	case KindTransit:
		return BuildTransitReport(records), nil
	}
	return Report{}, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
}

// BuildManifest lays records out by LR number, 50 per page.
func BuildManifest(records []Record) Report {
	return finish(Report{
		Kind:  KindManifest,
		Pages: layoutPages(SortByLR(records), ManifestPageSize, false),
	}, records)
}

// BuildMotorReport lays records out grouped by destination, 24 per page, with
// destination headings, and appends the grouped summary.
func BuildMotorReport(records []Record) Report {
	body := Flatten(groupedInPrintOrder(records))
	return finish(Report{
		Kind:  KindMotor,
		Pages: layoutPages(body, MotorPageSize, true),
	}, records)
}

// BuildTransitReport is the manifest body with the grouped summary appended.
func BuildTransitReport(records []Record) Report {
	return finish(Report{
		Kind:  KindTransit,
		Pages: layoutPages(SortByLR(records), ManifestPageSize, false),
	}, records)
}

// Summarize returns one row per destination group of the whole record set,
// ordered like the motor report body.
func Summarize(records []Record) []SummaryRow {
	groups := groupedInPrintOrder(records)
	rows := make([]SummaryRow, len(groups))
	for i, g := range groups {
		rows[i] = SummaryRow{BranchID: g.BranchID, Destination: g.Name, Totals: Accumulate(g.Records)}
	}
	return rows
}

func finish(rep Report, records []Record) Report {
	if len(rep.Pages) == 0 {
		return rep
	}
	rep.Pages[len(rep.Pages)-1].Last = true
	totals := Accumulate(records)
	rep.Totals = &totals
	if rep.Kind.HasSummary() {
		rep.Summary = Summarize(records)
		var grand Totals
		for _, row := range rep.Summary {
			grand = grand.Add(row.Totals)
		}
		rep.GrandTotal = &grand
	}
	return rep
}

func layoutPages(records []Record, size int, headings bool) []Page {
	chunks := Chunk(records, size)
	pages := make([]Page, len(chunks))
	half := size / 2
	for i, chunk := range chunks {
		split := min(half, len(chunk))
		pages[i] = Page{
			Number: i + 1,
			Left:   columnRows(chunk[:split], headings),
			Right:  columnRows(chunk[split:], headings),
		}
	}
	return pages
}

// columnRows marks the first row of each contiguous destination run in a column.
func columnRows(records []Record, headings bool) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{Record: r}
		if headings {
			rows[i].ShowDestination = i == 0 || records[i-1].ToBranchID != r.ToBranchID
		}
	}
	return rows
}
