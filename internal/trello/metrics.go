package trello

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Имена эндпоинтов для меток метрик. В путь входят ID,
// поэтому путь в метки не попадает.
const (
	endpointBoards        = "boards"
	endpointColumns       = "columns"
	endpointCreateCard    = "create_card"
	endpointCreateComment = "create_comment"
	endpointCreateLabel   = "create_label"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics создаёт метрики клиента. При reg == nil метрики
// не регистрируются.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trellocli_api_requests_total",
			Help: "Total Trello API requests by endpoint, method and status code",
		}, []string{"endpoint", "method", "code"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trellocli_api_request_duration_seconds",
			Help:    "Trello API request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
	}
}

func (m *metrics) observe(endpoint, method, code string, elapsed time.Duration) {
	m.requests.WithLabelValues(endpoint, method, code).Inc()
	m.duration.WithLabelValues(endpoint, method).Observe(elapsed.Seconds())
}
