package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Результаты экспорта для лейбла result
const (
	ResultOK    = "ok"
	ResultInert = "inert"
	ResultError = "error"
)

// Виды экспорта для лейбла kind
const (
	KindICS  = "ics"
	KindLink = "link"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ExportsTotal        *prometheus.CounterVec
	SelectionsSaved     prometheus.Counter
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		ExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "salon_exports_total",
				Help:        "Booking exports by kind (ics, link) and result (ok, inert, error)",
				ConstLabels: constLabels,
			},
			[]string{"kind", "result"},
		),
		SelectionsSaved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "salon_selections_saved_total",
				Help:        "Number of saved session selections",
				ConstLabels: constLabels,
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ExportsTotal,
		m.SelectionsSaved,
	)

	return m
}

// ObserveExport увеличивает счетчик экспорта. Безопасен для nil-получателя
func (m *Metrics) ObserveExport(kind, result string) {
	if m == nil {
		return
	}
	m.ExportsTotal.WithLabelValues(kind, result).Inc()
}

// ObserveSelectionSaved увеличивает счетчик сохраненных выборов. Безопасен для nil-получателя
func (m *Metrics) ObserveSelectionSaved() {
	if m == nil {
		return
	}
	m.SelectionsSaved.Inc()
}
