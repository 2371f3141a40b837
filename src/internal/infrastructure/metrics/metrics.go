package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jifen"

// Metrics 應用程式的 Prometheus collectors
//
// 每個實例使用自己的 Registry，測試之間互不影響。
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight  prometheus.Gauge
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	domainEvents  *prometheus.CounterVec
	ledgerPoints  *prometheus.CounterVec
	rateLimitHits *prometheus.CounterVec
}

// New 建立並註冊所有 collectors
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms ~ 2.5s
		}, []string{"method", "route"}),
		domainEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Total number of domain events published.",
		}, []string{"event_type"}),
		ledgerPoints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "points_total",
			Help:      "Total points moved through the ledger.",
		}, []string{"type"}),
		rateLimitHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}, []string{"limiter"}),
	}

	m.Registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.domainEvents,
		m.ledgerPoints,
		m.rateLimitHits,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler 返回 /metrics 的 HTTP handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// RequestStarted 請求開始，返回結束時調用的函數
func (m *Metrics) RequestStarted() func(method, route string, status int) {
	start := time.Now()
	m.httpInFlight.Inc()
	return func(method, route string, status int) {
		m.httpInFlight.Dec()
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// EventPublished 記錄領域事件
func (m *Metrics) EventPublished(eventType string) {
	m.domainEvents.WithLabelValues(eventType).Inc()
}

// PointsMoved 記錄帳本異動量（txType 為 credit / debit）
func (m *Metrics) PointsMoved(txType string, amount int) {
	if amount <= 0 {
		return
	}
	m.ledgerPoints.WithLabelValues(txType).Add(float64(amount))
}

// RateLimited 記錄被限流的請求
func (m *Metrics) RateLimited(limiter string) {
	m.rateLimitHits.WithLabelValues(limiter).Inc()
}
