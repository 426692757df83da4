package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transportreports/ewaybill"
	"transportreports/metrics"
	"transportreports/models"
	"transportreports/report"
	"transportreports/repository"
)

type fakeBookings struct {
	list []models.Booking
	err  error
}

func (f fakeBookings) GetBookings(context.Context, repository.BookingFilter) ([]models.Booking, error) {
	return f.list, f.err
}

type fakeMemos struct{ memo *models.LoadingMemo }

func (f fakeMemos) GetLoadingMemo(context.Context, string) (*models.LoadingMemo, error) {
	return f.memo, nil
}

type fakeCompany struct{}

func (fakeCompany) SaveCompany(context.Context, *models.Company) error { return nil }
func (fakeCompany) GetCompany(context.Context) (*models.Company, error) {
	return &models.Company{Name: "Hari Om Transport", Mobile: []models.MobileEntry{{Number: "98250", Label: "Office"}}}, nil
}

type fakePrinter struct{ html []byte }

func (p *fakePrinter) PrintPDF(_ context.Context, html []byte) ([]byte, error) {
	p.html = html
	return []byte("%PDF-1.4"), nil
}

type fakeUploader struct {
	key string
	err error
}

func (u *fakeUploader) Upload(_ context.Context, _ []byte, key string) (string, error) {
	u.key = key
	if u.err != nil {
		return "", u.err
	}
	return "https://cdn.example.com/" + key, nil
}

func bookings(n int) []models.Booking {
	list := make([]models.Booking, n)
	for i := range list {
		dest := int64(i%3 + 1)
		list[i] = models.Booking{
			ID:           int64(i + 1),
			LRNumber:     strconv.Itoa(1000 + i),
			ToBranchID:   dest,
			ToBranchName: []string{"Surat", "Anand", "Vapi"}[dest-1],
			PaymentType:  models.PaymentToPay,
			GrandTotal:   decimal.NewFromInt(100),
			EwayBillNo:   "3710" + strconv.Itoa(i),
			Details: []models.BookingDetail{
				{Article: 1, Weight: decimal.NewFromInt(10), ChargeWeight: decimal.NewFromInt(12)},
			},
		}
	}
	return list
}

func newService(t *testing.T, list []models.Booking) (*ReportService, *fakePrinter) {
	t.Helper()
	printer := &fakePrinter{}
	memo := &models.LoadingMemo{LDMNo: "LDM-9", VehicleNo: "gj 05 ab 1234", FromBranch: "Ahmedabad", FromStateCode: 24,
		Date: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)}
	return &ReportService{
		Repo:     repository.NewReportRepository(fakeBookings{list: list}, fakeMemos{memo: memo}, fakeCompany{}),
		Measurer: report.FixedMeasurer{RowHeight: 24},
		Geometry: report.A4,
		Printer:  printer,
		PDFDir:   t.TempDir(),
		Metrics:  metrics.New("test", prometheus.NewRegistry()),
		Logger:   zerolog.Nop(),
		Now:      func() time.Time { return time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC) },
	}, printer
}

func TestBuildMotorReport(t *testing.T) {
	svc, _ := newService(t, bookings(5))

	built, err := svc.Build(context.Background(), report.KindMotor, repository.BookingFilter{LDMNo: "LDM-9"})
	require.NoError(t, err)

	assert.Len(t, built.Report.Pages, 1)
	assert.Len(t, built.Summary.First.Rows, 3)
	assert.Empty(t, built.Summary.Deferred)
	assert.NotNil(t, built.Summary.First.GrandTotal)
	assert.Equal(t, "five hundred rupees only", built.TotalWords)
	assert.Equal(t, "LDM-9", built.Memo.LDMNo)
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.Metrics.Built.WithLabelValues("gdm")))
}

func TestBuildManifestWordsFromBodyTotals(t *testing.T) {
	svc, _ := newService(t, bookings(2))

	built, err := svc.Build(context.Background(), report.KindManifest, repository.BookingFilter{})
	require.NoError(t, err)
	assert.Nil(t, built.Report.GrandTotal)
	assert.Equal(t, "two hundred rupees only", built.TotalWords)
}

func TestBuildEmpty(t *testing.T) {
	svc, _ := newService(t, nil)

	built, err := svc.Build(context.Background(), report.KindTransit, repository.BookingFilter{})
	require.NoError(t, err)
	assert.Empty(t, built.Report.Pages)
	assert.Empty(t, built.Summary.First.Rows)
	assert.Empty(t, built.TotalWords)
}

func TestBuildInvalidLR(t *testing.T) {
	list := bookings(2)
	list[1].LRNumber = "12A"
	svc, _ := newService(t, list)

	_, err := svc.Build(context.Background(), report.KindManifest, repository.BookingFilter{})
	var lrErr *report.InvalidLRError
	require.ErrorAs(t, err, &lrErr)
	assert.Equal(t, []string{"12A"}, lrErr.LRNumbers)
}

func TestBuildRepositoryError(t *testing.T) {
	svc, _ := newService(t, nil)
	boom := errors.New("connection refused")
	svc.Repo.Bookings = fakeBookings{err: boom}

	_, err := svc.Build(context.Background(), report.KindManifest, repository.BookingFilter{})
	assert.ErrorIs(t, err, boom)
}

func TestPDFSavesAndUploads(t *testing.T) {
	svc, printer := newService(t, bookings(4))
	uploader := &fakeUploader{}
	svc.Uploader = uploader

	res, err := svc.PDF(context.Background(), report.KindTransit, repository.BookingFilter{})
	require.NoError(t, err)

	assert.Contains(t, string(printer.html), "Hari Om Transport")
	assert.Contains(t, string(printer.html), "four hundred rupees only")
	saved, err := os.ReadFile(filepath.Join(svc.PDFDir, res.File))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(saved))
	assert.Equal(t, res.File, uploader.key)
	assert.Equal(t, "https://cdn.example.com/"+res.File, res.URL)

	again, err := svc.PDF(context.Background(), report.KindTransit, repository.BookingFilter{})
	require.NoError(t, err)
	assert.Equal(t, res.File, again.File)
}

func TestPDFUploadFailureKeepsLocalFile(t *testing.T) {
	svc, _ := newService(t, bookings(1))
	svc.Uploader = &fakeUploader{err: errors.New("denied")}

	res, err := svc.PDF(context.Background(), report.KindManifest, repository.BookingFilter{})
	require.NoError(t, err)
	assert.Empty(t, res.URL)
	assert.FileExists(t, filepath.Join(svc.PDFDir, res.File))
}

func TestXLSX(t *testing.T) {
	svc, _ := newService(t, bookings(3))

	data, err := svc.XLSX(context.Background(), report.KindMotor, repository.BookingFilter{})
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data[:2]))
}

func TestConsolidated(t *testing.T) {
	svc, _ := newService(t, bookings(2))

	req, err := svc.Consolidated(context.Background(), "LDM-9")
	require.NoError(t, err)
	assert.Equal(t, "GJ05AB1234", req.VehicleNo)
	assert.Equal(t, []ewaybill.TripSheetBill{{EwbNo: "37100"}, {EwbNo: "37101"}}, req.TripSheetEwbBills)
}

func TestConsolidatedUnknownMemo(t *testing.T) {
	svc, _ := newService(t, nil)
	svc.Repo.Memos = fakeMemos{}

	_, err := svc.Consolidated(context.Background(), "LDM-404")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

type countingMeasurer struct {
	calls int
}

func (m *countingMeasurer) Measure(ctx context.Context, rows []report.SummaryRow) ([]float64, error) {
	m.calls++
	return report.FixedMeasurer{RowHeight: 24}.Measure(ctx, rows)
}

func TestPrintMeasurerOnlyForPDF(t *testing.T) {
	svc, _ := newService(t, bookings(3))
	dom := &countingMeasurer{}
	svc.PrintMeasurer = dom

	_, err := svc.Build(context.Background(), report.KindMotor, repository.BookingFilter{})
	require.NoError(t, err)
	assert.Zero(t, dom.calls)

	_, err = svc.PDF(context.Background(), report.KindMotor, repository.BookingFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, dom.calls)
}
