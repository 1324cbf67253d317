package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics - собственный реестр, чтобы тесты могли создавать несколько экземпляров
type Metrics struct {
	registry *prometheus.Registry

	NotificationsEnqueued  *prometheus.CounterVec
	NotificationsDropped   *prometheus.CounterVec
	NotificationsDelivered *prometheus.CounterVec
	NotificationsFailed    *prometheus.CounterVec
	NotificationsSkipped   *prometheus.CounterVec

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		NotificationsEnqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "immo",
			Subsystem: "notifications",
			Name:      "enqueued_total",
			Help:      "Notification jobs accepted by the dispatcher.",
		}, []string{"kind"}),
		NotificationsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "immo",
			Subsystem: "notifications",
			Name:      "dropped_total",
			Help:      "Notification jobs dropped because the queue was full or closed.",
		}, []string{"kind"}),
		NotificationsDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "immo",
			Subsystem: "notifications",
			Name:      "delivered_total",
			Help:      "Notification jobs completed without error.",
		}, []string{"kind"}),
		NotificationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "immo",
			Subsystem: "notifications",
			Name:      "failed_total",
			Help:      "Notification jobs that returned an error.",
		}, []string{"kind"}),
		NotificationsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "immo",
			Subsystem: "notifications",
			Name:      "self_skipped_total",
			Help:      "Notifications suppressed because the recipient is the actor.",
		}, []string{"kind"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "immo",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "immo",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.NotificationsEnqueued,
		m.NotificationsDropped,
		m.NotificationsDelivered,
		m.NotificationsFailed,
		m.NotificationsSkipped,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// Handler - обработчик /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Хелперы безопасны для nil: без метрик (в тестах) вызовы ничего не делают

func (m *Metrics) NotificationEnqueued(kind string) {
	if m != nil {
		m.NotificationsEnqueued.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) NotificationDropped(kind string) {
	if m != nil {
		m.NotificationsDropped.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) NotificationDelivered(kind string) {
	if m != nil {
		m.NotificationsDelivered.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) NotificationFailed(kind string) {
	if m != nil {
		m.NotificationsFailed.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) NotificationSkipped(kind string) {
	if m != nil {
		m.NotificationsSkipped.WithLabelValues(kind).Inc()
	}
}
