package report

import (
	"context"
	"errors"
	"fmt"
)

const (
	// SummaryHeaderAllowance is reserved above the summary rows on the last page.
	SummaryHeaderAllowance = 94.0
	// SummaryPadding is added below the summary when it fits on one page.
	SummaryPadding = 35.0
	// SummaryPageCapacity is the number of groups on a summary-only page.
	SummaryPageCapacity = 24
)

var ErrMeasurementMismatch = errors.New("summary row measurements do not match summary rows")

// Measurer reports the rendered height of each summary row, in pixels.
type Measurer interface {
	Measure(ctx context.Context, rows []SummaryRow) ([]float64, error)
}

// FixedMeasurer gives every row the same height.
type FixedMeasurer struct {
	RowHeight float64
}

func (m FixedMeasurer) Measure(_ context.Context, rows []SummaryRow) ([]float64, error) {
	heights := make([]float64, len(rows))
	for i := range heights {
		heights[i] = m.RowHeight
	}
	return heights, nil
}

// Geometry describes the printed body in pixels.
type Geometry struct {
	PageHeight       float64
	BodyHeaderHeight float64
	BodyRowHeight    float64
}

// A4 at 96 dpi with the default print template.
var A4 = Geometry{PageHeight: 1123, BodyHeaderHeight: 190, BodyRowHeight: 26}

// SummaryContainerHeight is the space left on page last below its body rows.
func (g Geometry) SummaryContainerHeight(last Page) float64 {
	return max(g.PageHeight-g.BodyHeaderHeight-float64(last.Lines())*g.BodyRowHeight, 0)
}

// Split is the outcome of Paginate, as indexes into the measured rows.
type Split struct {
	FirstPage []int
	Deferred  [][]int
	Used      float64
}

// Paginate places the longest prefix of rows whose cumulative height stays
// within available on the first page and chunks the rest into pages of capacity.
func Paginate(heights []float64, available float64, capacity int) Split {
	var s Split
	fit := 0
	for _, h := range heights {
		if s.Used+h > available {
			break
		}
		s.Used += h
		fit++
	}
	s.FirstPage = make([]int, fit)
	for i := range s.FirstPage {
		s.FirstPage[i] = i
	}
	rest := make([]int, 0, len(heights)-fit)
	for i := fit; i < len(heights); i++ {
		rest = append(rest, i)
	}
	s.Deferred = Chunk(rest, capacity)
	return s
}

// SummaryPage is a block of summary rows. GrandTotal is set on the block that
// closes the summary.
type SummaryPage struct {
	Rows       []SummaryRow `json:"rows"`
	GrandTotal *Totals      `json:"grandTotal,omitempty"`
}

// SummaryLayout places a report's summary across the last body page and any
// summary-only pages that follow it.
type SummaryLayout struct {
	Available     float64       `json:"available"`
	ContentHeight float64       `json:"contentHeight"`
	First         SummaryPage   `json:"first"`
	Deferred      []SummaryPage `json:"deferred,omitempty"`
}

// PaginateSummary splits rep's summary given the measured row heights and the
// height of the summary container on the last body page.
func PaginateSummary(rep Report, heights []float64, containerHeight float64) (SummaryLayout, error) {
	if len(heights) != len(rep.Summary) {
		return SummaryLayout{}, fmt.Errorf("%w: %d heights for %d rows", ErrMeasurementMismatch, len(heights), len(rep.Summary))
	}
	if len(rep.Summary) == 0 {
		return SummaryLayout{}, nil
	}

	layout := SummaryLayout{Available: containerHeight - SummaryHeaderAllowance}
	split := Paginate(heights, layout.Available, SummaryPageCapacity)

	layout.First.Rows = pick(rep.Summary, split.FirstPage)
	for _, idx := range split.Deferred {
		layout.Deferred = append(layout.Deferred, SummaryPage{Rows: pick(rep.Summary, idx)})
	}

	if len(layout.Deferred) == 0 {
		layout.ContentHeight = split.Used + SummaryPadding
		layout.First.GrandTotal = rep.GrandTotal
	} else {
		layout.ContentHeight = split.Used
		layout.Deferred[len(layout.Deferred)-1].GrandTotal = rep.GrandTotal
	}
	return layout, nil
}

// LayoutSummary measures rep's summary rows with m and paginates them against
// the space g leaves on the last body page.
func LayoutSummary(ctx context.Context, rep Report, m Measurer, g Geometry) (SummaryLayout, error) {
	if len(rep.Summary) == 0 {
		return SummaryLayout{}, nil
	}
	heights, err := m.Measure(ctx, rep.Summary)
	if err != nil {
		return SummaryLayout{}, fmt.Errorf("measure summary rows: %w", err)
	}
	return PaginateSummary(rep, heights, g.SummaryContainerHeight(rep.Pages[len(rep.Pages)-1]))
}

func pick(rows []SummaryRow, idx []int) []SummaryRow {
	out := make([]SummaryRow, len(idx))
	for i, j := range idx {
		out[i] = rows[j]
	}
	return out
}
