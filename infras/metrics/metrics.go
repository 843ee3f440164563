package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "concierge"

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	serviceRequestsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "service_requests_created_total",
		Help:      "Service requests stored, by origin and type",
	}, []string{"origin", "type"})

	brokerConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "broker_connections",
		Help:      "Open dashboard connections",
	})

	brokerSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "broker_subscribers",
		Help:      "Connections joined to a hotel topic",
	})

	brokerEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broker_events_total",
		Help:      "Events published to hotel topics",
	}, []string{"event"})

	brokerDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broker_deliveries_total",
		Help:      "Per-connection deliveries by result",
	}, []string{"result"})

	brokerJoins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broker_joins_total",
		Help:      "Topic join attempts by result",
	}, []string{"result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveServiceRequest counts a stored service request.
func ObserveServiceRequest(origin, requestType string) {
	serviceRequestsCreated.WithLabelValues(origin, requestType).Inc()
}

func ConnectionOpened() {
	brokerConnections.Inc()
}

func ConnectionClosed() {
	brokerConnections.Dec()
}

// SetSubscribers sets the number of connections that are members of a topic.
func SetSubscribers(count int) {
	brokerSubscribers.Set(float64(max(count, 0)))
}

func ObserveEvent(event string) {
	brokerEvents.WithLabelValues(event).Inc()
}

func ObserveDelivery(result string) {
	brokerDeliveries.WithLabelValues(result).Inc()
}

func ObserveJoin(result string) {
	brokerJoins.WithLabelValues(result).Inc()
}
