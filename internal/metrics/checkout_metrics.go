package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics содержит метрики оформления заказов терминала.
type CheckoutMetrics struct {
	// Счётчики исходов
	checkoutStarted   prometheus.Counter
	checkoutApproved  prometheus.Counter
	checkoutDeclined  prometheus.Counter
	checkoutCancelled prometheus.Counter

	// Попытки оплаты по способу и результату
	tenderOutcomes *prometheus.CounterVec

	// Гистограммы
	checkoutDuration prometheus.Histogram
	chargedAmount    prometheus.Histogram

	// Сумма чаевых
	tipsTotal prometheus.Counter

	// Позиций в текущем заказе
	openOrderLines prometheus.Gauge
}

// NewCheckoutMetricsWithRegisterer создаёт метрики в указанном реестре.
// При nil используется глобальный реестр Prometheus.
func NewCheckoutMetricsWithRegisterer(registerer prometheus.Registerer) *CheckoutMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CheckoutMetrics{
		checkoutStarted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pos_checkout_started_total",
			Help: "Total number of checkouts started",
		}),
		checkoutApproved: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pos_checkout_approved_total",
			Help: "Total number of checkouts settled successfully",
		}),
		checkoutDeclined: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pos_checkout_declined_total",
			Help: "Total number of checkouts declined by a tender",
		}),
		checkoutCancelled: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pos_checkout_cancelled_total",
			Help: "Total number of checkouts cancelled by the operator",
		}),
		tenderOutcomes: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "pos_tender_outcomes_total",
			Help: "Tender attempts by method and status",
		}, []string{"method", "status"}),
		checkoutDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "pos_checkout_duration_seconds",
			Help:    "Duration of checkout dialogs in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		}),
		chargedAmount: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "pos_charged_amount",
			Help:    "Amounts settled by approved tenders",
			Buckets: []float64{5, 10, 20, 50, 100, 200},
		}),
		tipsTotal: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pos_tips_total",
			Help: "Sum of tips added at checkout",
		}),
		openOrderLines: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "pos_open_order_lines",
			Help: "Number of lines in the current order",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordCheckoutStarted увеличивает счётчик начатых оформлений.
func (m *CheckoutMetrics) RecordCheckoutStarted() {
	m.checkoutStarted.Inc()
}

// RecordCheckoutApproved учитывает успешную оплату и её сумму.
func (m *CheckoutMetrics) RecordCheckoutApproved(method string, amount float64) {
	m.checkoutApproved.Inc()
	m.tenderOutcomes.WithLabelValues(method, "approved").Inc()
	m.chargedAmount.Observe(amount)
}

// RecordCheckoutDeclined учитывает отказ в оплате.
func (m *CheckoutMetrics) RecordCheckoutDeclined(method string) {
	m.checkoutDeclined.Inc()
	m.tenderOutcomes.WithLabelValues(method, "declined").Inc()
}

// RecordCheckoutCancelled учитывает отмену оформления. method пуст, если
// отмена произошла до выбора способа оплаты.
func (m *CheckoutMetrics) RecordCheckoutCancelled(method string) {
	m.checkoutCancelled.Inc()
	if method != "" {
		m.tenderOutcomes.WithLabelValues(method, "cancelled").Inc()
	}
}

// RecordTip добавляет сумму чаевых.
func (m *CheckoutMetrics) RecordTip(amount float64) {
	if amount > 0 {
		m.tipsTotal.Add(amount)
	}
}

// RecordCheckoutDuration записывает длительность диалога оплаты.
func (m *CheckoutMetrics) RecordCheckoutDuration(duration time.Duration) {
	m.checkoutDuration.Observe(duration.Seconds())
}

// SetOpenOrderLines выставляет количество позиций в текущем заказе.
func (m *CheckoutMetrics) SetOpenOrderLines(n int) {
	m.openOrderLines.Set(float64(n))
}
