package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := c.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := h.Write(metric); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}
	return metric.Histogram.GetSampleCount()
}

func TestNewCheckoutMetrics(t *testing.T) {
	metrics := NewCheckoutMetricsWithRegisterer(prometheus.NewRegistry())

	if metrics == nil {
		t.Fatal("NewCheckoutMetricsWithRegisterer should not return nil")
	}
	if metrics.checkoutStarted == nil {
		t.Error("checkoutStarted counter should not be nil")
	}
	if metrics.checkoutApproved == nil {
		t.Error("checkoutApproved counter should not be nil")
	}
	if metrics.checkoutDeclined == nil {
		t.Error("checkoutDeclined counter should not be nil")
	}
	if metrics.checkoutCancelled == nil {
		t.Error("checkoutCancelled counter should not be nil")
	}
	if metrics.tenderOutcomes == nil {
		t.Error("tenderOutcomes counter vec should not be nil")
	}
	if metrics.checkoutDuration == nil {
		t.Error("checkoutDuration histogram should not be nil")
	}
	if metrics.openOrderLines == nil {
		t.Error("openOrderLines gauge should not be nil")
	}
}

func TestNewCheckoutMetrics_ReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewCheckoutMetricsWithRegisterer(reg)
	second := NewCheckoutMetricsWithRegisterer(reg)

	first.RecordCheckoutStarted()
	if got := counterValue(t, second.checkoutStarted); got != 1.0 {
		t.Fatalf("expected shared counter value 1.0, got %f", got)
	}
}

func TestCheckoutLifecycle(t *testing.T) {
	metrics := NewCheckoutMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordCheckoutStarted()
	metrics.RecordCheckoutDeclined("cash")
	metrics.RecordCheckoutStarted()
	metrics.RecordCheckoutCancelled("")
	metrics.RecordCheckoutStarted()
	metrics.RecordTip(1.5)
	metrics.RecordTip(0)
	metrics.RecordCheckoutApproved("card", 15.04)
	metrics.RecordCheckoutDuration(2 * time.Second)

	if got := counterValue(t, metrics.checkoutStarted); got != 3.0 {
		t.Errorf("expected started 3.0, got %f", got)
	}
	if got := counterValue(t, metrics.checkoutApproved); got != 1.0 {
		t.Errorf("expected approved 1.0, got %f", got)
	}
	if got := counterValue(t, metrics.checkoutDeclined); got != 1.0 {
		t.Errorf("expected declined 1.0, got %f", got)
	}
	if got := counterValue(t, metrics.checkoutCancelled); got != 1.0 {
		t.Errorf("expected cancelled 1.0, got %f", got)
	}
	if got := counterValue(t, metrics.tipsTotal); got != 1.5 {
		t.Errorf("expected tips 1.5, got %f", got)
	}
	if got := counterValue(t, metrics.tenderOutcomes.WithLabelValues("cash", "declined")); got != 1.0 {
		t.Errorf("expected cash/declined 1.0, got %f", got)
	}
	if got := counterValue(t, metrics.tenderOutcomes.WithLabelValues("card", "approved")); got != 1.0 {
		t.Errorf("expected card/approved 1.0, got %f", got)
	}
	if got := histogramCount(t, metrics.chargedAmount); got != 1 {
		t.Errorf("expected 1 charged sample, got %d", got)
	}
	if got := histogramCount(t, metrics.checkoutDuration); got != 1 {
		t.Errorf("expected 1 duration sample, got %d", got)
	}
}

func TestSetOpenOrderLines(t *testing.T) {
	metrics := NewCheckoutMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.SetOpenOrderLines(3)

	gaugeMetric := &dto.Metric{}
	if err := metrics.openOrderLines.Write(gaugeMetric); err != nil {
		t.Fatalf("failed to write gauge: %v", err)
	}
	if gaugeMetric.Gauge.GetValue() != 3.0 {
		t.Errorf("expected open lines 3.0, got %f", gaugeMetric.Gauge.GetValue())
	}
}
