package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Reports groups the collectors for report generation.
type Reports struct {
	Built         *prometheus.CounterVec
	Pages         *prometheus.HistogramVec
	DeferredPages *prometheus.HistogramVec
	PDFDuration   prometheus.Histogram
}

// New registers the report collectors with reg, or the default registerer when nil.
func New(namespace string, reg prometheus.Registerer) *Reports {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Reports{
		Built: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_built_total",
			Help:      "Reports built, by kind.",
		}, []string{"kind"}),
		Pages: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_pages",
			Help:      "Body pages per built report.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50},
		}, []string{"kind"}),
		DeferredPages: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "summary_deferred_pages",
			Help:      "Summary-only pages appended after the last body page.",
			Buckets:   []float64{0, 1, 2, 5},
		}, []string{"kind"}),
		PDFDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pdf_render_duration_seconds",
			Help:      "Time spent printing report PDFs in headless Chrome.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.Built = register(reg, m.Built)
	m.Pages = register(reg, m.Pages)
	m.DeferredPages = register(reg, m.DeferredPages)
	m.PDFDuration = register(reg, m.PDFDuration)
	return m
}

// register reuses an already registered collector so that building two
// servers in one process does not panic.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// ObserveBuild records one built report.
func (m *Reports) ObserveBuild(kind string, pages, deferred int) {
	if m == nil {
		return
	}
	m.Built.WithLabelValues(kind).Inc()
	m.Pages.WithLabelValues(kind).Observe(float64(pages))
	m.DeferredPages.WithLabelValues(kind).Observe(float64(deferred))
}
