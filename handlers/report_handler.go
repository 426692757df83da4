package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"transportreports/report"
	"transportreports/repository"
	"transportreports/service"
)

const dateLayout = "2006-01-02"

type ReportHandler struct {
	Service *service.ReportService
	Logger  zerolog.Logger
}

// parseFilter reads the booking filter from the query string.
func parseFilter(r *http.Request) (repository.BookingFilter, error) {
	q := r.URL.Query()
	f := repository.BookingFilter{LDMNo: q.Get("ldm_no")}

	var err error
	if f.FromBranchID, err = parseID(q.Get("from_branch_id")); err != nil {
		return f, fmt.Errorf("invalid from_branch_id: %w", err)
	}
	if f.ToBranchID, err = parseID(q.Get("to_branch_id")); err != nil {
		return f, fmt.Errorf("invalid to_branch_id: %w", err)
	}
	if f.From, err = parseDate(q.Get("from")); err != nil {
		return f, fmt.Errorf("invalid from: %w", err)
	}
	if f.To, err = parseDate(q.Get("to")); err != nil {
		return f, fmt.Errorf("invalid to: %w", err)
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return f, errors.New("to is before from")
	}
	return f, validate.Struct(f)
}

func parseID(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

// request parses the kind path parameter and the filter.
func (h *ReportHandler) request(w http.ResponseWriter, r *http.Request) (report.Kind, repository.BookingFilter, bool) {
	kind, err := report.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return "", repository.BookingFilter{}, false
	}
	f, err := parseFilter(r)
	if err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return "", repository.BookingFilter{}, false
	}
	return kind, f, true
}

// GetBookings lists the indexed bookings matching the filter.
func (h *ReportHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}
	records, err := h.Service.Records(r.Context(), f)
	if err != nil {
		writeError(w, h.Logger, r, err)
		return
	}
	if records == nil {
		records = []report.Record{}
	}
	writeData(w, http.StatusOK, records)
}

func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	kind, f, ok := h.request(w, r)
	if !ok {
		return
	}
	built, err := h.Service.Build(r.Context(), kind, f)
	if err != nil {
		writeError(w, h.Logger, r, err)
		return
	}
	writeData(w, http.StatusOK, built)
}

// GetReportPDF prints the report. With download=1 the PDF itself is returned,
// otherwise the saved file name and public URL.
func (h *ReportHandler) GetReportPDF(w http.ResponseWriter, r *http.Request) {
	kind, f, ok := h.request(w, r)
	if !ok {
		return
	}
	res, err := h.Service.PDF(r.Context(), kind, f)
	if err != nil {
		writeError(w, h.Logger, r, err)
		return
	}

	if r.URL.Query().Get("download") == "1" {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.File))
		_, _ = w.Write(res.Bytes)
		return
	}
	writeData(w, http.StatusOK, res)
}

func (h *ReportHandler) GetReportXLSX(w http.ResponseWriter, r *http.Request) {
	kind, f, ok := h.request(w, r)
	if !ok {
		return
	}
	data, err := h.Service.XLSX(r.Context(), kind, f)
	if err != nil {
		writeError(w, h.Logger, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(kind)+".xlsx"))
	_, _ = w.Write(data)
}
