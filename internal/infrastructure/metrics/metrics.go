package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/usecase/interfaces"
)

type ServerMetrics struct {
	Requests        *prometheus.CounterVec
	LatencyMS       *prometheus.HistogramVec
	Reconciliations *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewServerMetrics registers the collectors on a registry owned by the instance.
func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payment_sync",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payment_sync",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	reconciliations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payment_sync",
		Subsystem: service,
		Name:      "order_events_total",
		Help:      "Order reconciliation outcomes by event type.",
	}, []string{"type"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(requests, latency, reconciliations)
	return &ServerMetrics{
		Requests:        requests,
		LatencyMS:       latency,
		Reconciliations: reconciliations,
		registry:        registry,
	}
}

func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// CountingPublisher counts order events before handing them to next.
type CountingPublisher struct {
	next    interfaces.IOrderEventPublisher
	metrics *ServerMetrics
}

var _ interfaces.IOrderEventPublisher = (*CountingPublisher)(nil)

func NewCountingPublisher(next interfaces.IOrderEventPublisher, m *ServerMetrics) *CountingPublisher {
	return &CountingPublisher{next: next, metrics: m}
}

func (p *CountingPublisher) PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error {
	p.metrics.Reconciliations.WithLabelValues(string(event.Type)).Inc()
	if p.next == nil {
		return nil
	}
	return p.next.PublishOrderEvent(ctx, event)
}
