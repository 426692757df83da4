package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"transportreports/ewaybill"
	"transportreports/export"
	"transportreports/metrics"
	"transportreports/models"
	"transportreports/report"
	"transportreports/repository"
	"transportreports/templates"
	"transportreports/utils"
)

// Printer turns rendered report HTML into PDF bytes.
type Printer interface {
	PrintPDF(ctx context.Context, html []byte) ([]byte, error)
}

// Uploader stores a generated file and returns where it can be fetched.
type Uploader interface {
	Upload(ctx context.Context, fileBytes []byte, key string) (string, error)
}

// ReportService builds loading memo reports from stored bookings.
type ReportService struct {
	Repo     *repository.ReportRepository
	Measurer report.Measurer

	// PrintMeasurer, when set, replaces Measurer for reports that are printed.
	PrintMeasurer report.Measurer
	Geometry      report.Geometry
	Printer       Printer
	Uploader      Uploader // nil keeps PDFs local only
	PDFDir        string
	Metrics       *metrics.Reports
	Logger        zerolog.Logger
	Now           func() time.Time
}

// Built is a report with its summary placed and its total spelled out.
type Built struct {
	Report     report.Report        `json:"report"`
	Summary    report.SummaryLayout `json:"summary"`
	TotalWords string               `json:"totalWords,omitempty"`
	Memo       *models.LoadingMemo  `json:"memo,omitempty"`
	Company    *models.Company      `json:"-"`
}

// PDFResult describes a printed report.
type PDFResult struct {
	File  string `json:"file"`
	URL   string `json:"url,omitempty"`
	Bytes []byte `json:"-"`
}

func (s *ReportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Records fetches the bookings for filter and numbers them from 1.
func (s *ReportService) Records(ctx context.Context, filter repository.BookingFilter) ([]report.Record, error) {
	bookings, err := s.Repo.Bookings.GetBookings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}
	return report.IndexRecords(bookings, 1)
}

// Build fetches, builds and lays out one report.
func (s *ReportService) Build(ctx context.Context, kind report.Kind, filter repository.BookingFilter) (*Built, error) {
	return s.build(ctx, kind, filter, s.Measurer)
}

func (s *ReportService) build(ctx context.Context, kind report.Kind, filter repository.BookingFilter, m report.Measurer) (*Built, error) {
	bookings, memo, company, err := s.Repo.GetReportInput(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get report input: %w", err)
	}
	records, err := report.IndexRecords(bookings, 1)
	if err != nil {
		return nil, err
	}
	rep, err := report.Build(kind, records)
	if err != nil {
		return nil, err
	}

	layout, err := report.LayoutSummary(ctx, rep, m, s.Geometry)
	if err != nil {
		return nil, err
	}

	words, err := totalWords(rep)
	if err != nil {
		return nil, err
	}

	s.Metrics.ObserveBuild(string(kind), len(rep.Pages), len(layout.Deferred))
	s.Logger.Debug().
		Str("kind", string(kind)).
		Int("records", len(records)).
		Int("pages", len(rep.Pages)).
		Int("deferred", len(layout.Deferred)).
		Msg("report built")

	return &Built{
		Report:     rep,
		Summary:    layout,
		TotalWords: words,
		Memo:       memo,
		Company:    company,
	}, nil
}

// totalWords spells out the freight of the grand total, or of the body
// totals for variants without a summary.
func totalWords(rep report.Report) (string, error) {
	t := rep.GrandTotal
	if t == nil {
		t = rep.Totals
	}
	if t == nil {
		return "", nil
	}
	return utils.AmountInWords(t.Freight())
}

// PDF prints the report, saves it under PDFDir and uploads it when an
// uploader is configured.
func (s *ReportService) PDF(ctx context.Context, kind report.Kind, filter repository.BookingFilter) (*PDFResult, error) {
	m := s.Measurer
	if s.PrintMeasurer != nil {
		m = s.PrintMeasurer
	}
	built, err := s.build(ctx, kind, filter, m)
	if err != nil {
		return nil, err
	}

	html, err := templates.RenderReport(templates.ReportData{
		Company:    built.Company,
		Memo:       built.Memo,
		Contacts:   built.Company.Contacts(),
		Date:       s.now().Format("02-Jan-2006 15:04"),
		Title:      kind.Title(),
		TotalWords: built.TotalWords,
		Report:     built.Report,
		Summary:    built.Summary,
	})
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	start := time.Now()
	pdfBytes, err := s.Printer.PrintPDF(ctx, html)
	if err != nil {
		return nil, err
	}
	if s.Metrics != nil {
		s.Metrics.PDFDuration.Observe(time.Since(start).Seconds())
	}

	saveDir := s.PDFDir
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create save directory: %w", err)
	}

	// Same snapshot, same name.
	filename := utils.ContentKey(string(kind), html, ".pdf")
	if err := os.WriteFile(filepath.Join(saveDir, filename), pdfBytes, 0644); err != nil {
		return nil, fmt.Errorf("save pdf: %w", err)
	}

	res := &PDFResult{File: filename, Bytes: pdfBytes}
	if s.Uploader != nil {
		url, err := s.Uploader.Upload(ctx, pdfBytes, filename)
		if err != nil {
			// The local copy is still usable.
			s.Logger.Error().Err(err).Str("file", filename).Msg("upload pdf")
		} else {
			res.URL = url
		}
	}

	s.Logger.Info().Str("kind", string(kind)).Str("file", filename).Int("bytes", len(pdfBytes)).Msg("pdf generated")
	return res, nil
}

// XLSX exports the report as a workbook.
func (s *ReportService) XLSX(ctx context.Context, kind report.Kind, filter repository.BookingFilter) ([]byte, error) {
	records, err := s.Records(ctx, filter)
	if err != nil {
		return nil, err
	}
	rep, err := report.Build(kind, records)
	if err != nil {
		return nil, err
	}
	s.Metrics.ObserveBuild(string(kind), len(rep.Pages), 0)
	return export.XLSX(rep)
}

// Consolidated builds the consolidated e-way bill request for a loading memo.
func (s *ReportService) Consolidated(ctx context.Context, ldmNo string) (ewaybill.ConsolidatedRequest, error) {
	memo, err := s.Repo.Memos.GetLoadingMemo(ctx, ldmNo)
	if err != nil {
		return ewaybill.ConsolidatedRequest{}, fmt.Errorf("get loading memo: %w", err)
	}
	if memo == nil {
		return ewaybill.ConsolidatedRequest{}, fmt.Errorf("loading memo %q: %w", ldmNo, repository.ErrNotFound)
	}
	records, err := s.Records(ctx, repository.BookingFilter{LDMNo: ldmNo})
	if err != nil {
		return ewaybill.ConsolidatedRequest{}, err
	}
	return ewaybill.BuildConsolidated(*memo, records)
}
