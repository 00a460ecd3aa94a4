package observability

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus series for the help/response flow. All
// methods are safe on a nil receiver so tests can skip metrics entirely.
type Metrics struct {
	gatherer prometheus.Gatherer

	HelpRequests  *prometheus.CounterVec
	Notifications *prometheus.CounterVec
	Responses     *prometheus.CounterVec
	FanoutSize    prometheus.Histogram
}

// NewMetrics registers against reg, defaulting to the global registry when nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	help, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "help_requests_total",
		Help: "Help requests handled, labeled by outcome.",
	}, []string{"outcome"}), "help_requests_total")
	if err != nil {
		return nil, err
	}

	notifications, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_total",
		Help: "Push notifications attempted, labeled by delivery outcome.",
	}, []string{"outcome"}), "notifications_total")
	if err != nil {
		return nil, err
	}

	responses, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "responses_total",
		Help: "Volunteer responses, labeled by response and outcome.",
	}, []string{"response", "outcome"}), "responses_total")
	if err != nil {
		return nil, err
	}

	fanout := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fanout_size",
		Help:    "Volunteers notified per help request.",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 20},
	})
	if err := reg.Register(fanout); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register fanout_size: %w", err)
		}
		existing, ok := are.ExistingCollector.(prometheus.Histogram)
		if !ok {
			return nil, fmt.Errorf("fanout_size already registered with different type")
		}
		fanout = existing
	}

	return &Metrics{
		gatherer:      gatherer,
		HelpRequests:  help,
		Notifications: notifications,
		Responses:     responses,
		FanoutSize:    fanout,
	}, nil
}

func (m *Metrics) ObserveHelpRequest(outcome string, fanout int) {
	if m == nil {
		return
	}
	m.HelpRequests.WithLabelValues(outcome).Inc()
	if fanout > 0 {
		m.FanoutSize.Observe(float64(fanout))
	}
}

func (m *Metrics) ObserveDelivery(delivered bool) {
	if m == nil {
		return
	}
	outcome := "failed"
	if delivered {
		outcome = "delivered"
	}
	m.Notifications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveResponse(response, outcome string) {
	if m == nil {
		return
	}
	m.Responses.WithLabelValues(response, outcome).Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, fmt.Errorf("%s already registered with different type", name)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
