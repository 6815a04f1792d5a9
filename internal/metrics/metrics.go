package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus counters for the service. Each instance
// owns its registry so tests can build routers without collisions.
type Metrics struct {
	registry *prometheus.Registry

	ChecksTotal     prometheus.Counter
	BreachesFound   prometheus.Counter
	InvalidDigests  prometheus.Counter
	SummariesTotal  prometheus.Counter
	SummaryFailures prometheus.Counter
}

// New creates and registers all counters.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		ChecksTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "crackbank_checks_total",
			Help: "Total number of breach-hash checks served",
		}),
		BreachesFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "crackbank_breaches_found_total",
			Help: "Total number of checks that matched at least one breach",
		}),
		InvalidDigests: factory.NewCounter(prometheus.CounterOpts{
			Name: "crackbank_invalid_digests_total",
			Help: "Total number of checks rejected for malformed digests",
		}),
		SummariesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "crackbank_summaries_total",
			Help: "Total number of successful breach summarizations",
		}),
		SummaryFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "crackbank_summary_failures_total",
			Help: "Total number of failed breach summarizations",
		}),
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
