package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"transportreports/handlers"
	"transportreports/logging"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Report   *handlers.ReportHandler
	EwayBill *handlers.EwayBillHandler
	Memo     *handlers.MemoHandler
	Company  *handlers.CompanyHandler
}

// Options configures the router.
type Options struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	Gatherer       prometheus.Gatherer // nil uses the default registry
}

func SetupRoutes(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(middleware.RequestID)
	r.Use(logging.RequestLogger(opts.Logger))
	r.Use(logging.Recoverer(opts.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health.Health)

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/bookings", h.Report.GetBookings)

	r.Route("/reports/{kind}", func(r chi.Router) {
		r.Get("/", h.Report.GetReport)
		r.Get("/pdf", h.Report.GetReportPDF)
		r.Get("/xlsx", h.Report.GetReportXLSX)
	})

	// E-way bill routes
	r.Get("/ewaybill/errors/{code}", h.EwayBill.GetErrors)
	r.Get("/ewaybill/consolidated", h.EwayBill.GetConsolidated)

	r.Post("/cash-memo/totals", h.Memo.CashMemoTotals)
	r.Post("/hire-slip/totals", h.Memo.HireSlipTotals)

	r.Get("/company", h.Company.GetCompany)
	r.Post("/company", h.Company.SaveCompany)

	return r
}
