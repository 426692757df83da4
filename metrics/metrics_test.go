package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveBuild(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("transport", reg)

	m.ObserveBuild("gdm", 3, 1)
	m.ObserveBuild("gdm", 1, 0)
	m.ObserveBuild("ldm", 2, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Built.WithLabelValues("gdm")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Built.WithLabelValues("ldm")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Pages))
}

func TestNewTwiceReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := New("transport", reg)
	second := New("transport", reg)

	second.ObserveBuild("transit", 1, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(first.Built.WithLabelValues("transit")))
}

func TestNilReportsIsNoop(t *testing.T) {
	var m *Reports
	assert.NotPanics(t, func() { m.ObserveBuild("ldm", 1, 0) })
}
