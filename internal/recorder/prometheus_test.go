package recorder

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorder_CountsMessages(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.RecordMessage("stock_price", OutcomeOK)
	r.RecordMessage("stock_price", OutcomeOK)
	r.RecordMessage("chart", OutcomeFailed)

	if got := testutil.ToFloat64(r.messages.WithLabelValues("stock_price", OutcomeOK)); got != 2 {
		t.Errorf("expected 2 stock_price messages, got %.0f", got)
	}
	if got := testutil.ToFloat64(r.messages.WithLabelValues("chart", OutcomeFailed)); got != 1 {
		t.Errorf("expected 1 failed chart message, got %.0f", got)
	}
}

func TestPrometheusRecorder_CountsLookups(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.RecordLookup("yahoo", OutcomeOK, 150*time.Millisecond)
	r.RecordLookup("yahoo", OutcomeFailed, 2*time.Second)

	if got := testutil.ToFloat64(r.lookups.WithLabelValues("yahoo", OutcomeFailed)); got != 1 {
		t.Errorf("expected 1 failed lookup, got %.0f", got)
	}
	if n := testutil.CollectAndCount(r.lookupDuration); n != 1 {
		t.Errorf("expected one histogram series, got %d", n)
	}
}

func TestPrometheusRecorder_SeparateRegistries(t *testing.T) {
	// Registering twice on the same registry would panic.
	NewPrometheusRecorder(prometheus.NewRegistry())
	NewPrometheusRecorder(prometheus.NewRegistry())
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	r.RecordMessage("unknown", OutcomeUnknown)
	r.RecordLookup("mock", OutcomeOK, time.Millisecond)
}
