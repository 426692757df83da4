package utils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"

	"transportreports/report"
	"transportreports/templates"
)

// A4 viewport in CSS pixels at 96 dpi.
const (
	a4WidthPx  = 794
	a4HeightPx = 1123
)

// Printer drives headless Chrome to print and measure report HTML.
type Printer struct {
	Timeout time.Duration
	TempDir string
}

func NewPrinter(timeout time.Duration) *Printer {
	return &Printer{Timeout: timeout, TempDir: os.TempDir()}
}

// run loads html in a fresh tab and then runs actions against it.
func (p *Printer) run(ctx context.Context, html []byte, actions ...chromedp.Action) error {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	dir := p.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	tmpHTML := filepath.Join(dir, "report_"+uuid.NewString()+".html")
	if err := os.WriteFile(tmpHTML, html, 0644); err != nil {
		return err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(a4WidthPx, a4HeightPx),
		chromedp.Navigate("file://" + tmpHTML),
		chromedp.WaitReady("body"),
	}
	return chromedp.Run(ctx, append(tasks, actions...)...)
}

// PrintPDF prints already rendered report HTML to an A4 PDF.
func (p *Printer) PrintPDF(ctx context.Context, html []byte) ([]byte, error) {
	var pdfBuf []byte
	err := p.run(ctx, html, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		pdfBuf, _, err = page.PrintToPDF().
			WithPrintBackground(true).
			WithPreferCSSPageSize(true).
			WithPaperWidth(8.27).  // A4 width
			WithPaperHeight(11.7). // A4 height
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return pdfBuf, nil
}

const measureRowsJS = `Array.from(document.querySelectorAll("tr.summary-row")).map(r => r.getBoundingClientRect().height)`

// ChromeMeasurer measures summary rows as the print template lays them out.
type ChromeMeasurer struct {
	Printer *Printer
}

func (m ChromeMeasurer) Measure(ctx context.Context, rows []report.SummaryRow) ([]float64, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	html, err := templates.RenderSummaryRows(rows)
	if err != nil {
		return nil, err
	}
	var heights []float64
	if err := m.Printer.run(ctx, html, chromedp.Evaluate(measureRowsJS, &heights)); err != nil {
		return nil, fmt.Errorf("measure summary rows: %w", err)
	}
	if len(heights) != len(rows) {
		return nil, fmt.Errorf("%w: measured %d of %d rows", report.ErrMeasurementMismatch, len(heights), len(rows))
	}
	return heights, nil
}
