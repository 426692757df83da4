package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"transportreports/handlers"
	"transportreports/metrics"
	"transportreports/service"
)

func newRouter() http.Handler {
	reg := prometheus.NewRegistry()
	svc := &service.ReportService{Metrics: metrics.New("test", reg), Logger: zerolog.Nop()}
	return SetupRoutes(Handlers{
		Health:   &handlers.HealthHandler{},
		Report:   &handlers.ReportHandler{Service: svc},
		EwayBill: &handlers.EwayBillHandler{Service: svc},
		Memo:     &handlers.MemoHandler{},
		Company:  &handlers.CompanyHandler{},
	}, Options{Logger: zerolog.Nop(), AllowedOrigins: []string{"https://office.example.com"}, Gatherer: reg})
}

func TestHealthAndMetrics(t *testing.T) {
	r := newRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/reports/ldm", nil)
	req.Header.Set("Origin", "https://office.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	newRouter().ServeHTTP(rec, req)
	assert.Equal(t, "https://office.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownKindRejectedBeforeService(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/bilty", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownEwayBillCodeList(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ewaybill/errors/105", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid Token")
}
