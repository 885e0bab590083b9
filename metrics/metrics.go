// Package metrics exports simulation counters to prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "office"

// Collector records step timings and state transitions on its own registry,
// so several simulations never clash on the global one.
type Collector struct {
	registry *prometheus.Registry

	steps        prometheus.Counter
	stepDuration prometheus.Histogram
	doorToggles  *prometheus.CounterVec
	seatChanges  *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Simulation steps run.",
		}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Wall time spent in one simulation step.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		doorToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "door_toggles_total",
			Help:      "Door toggles by the state the door ended in.",
		}, []string{"state"}),
		seatChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seat_transitions_total",
			Help:      "Seat transitions by the state entered.",
		}, []string{"state"}),
	}

	c.registry.MustRegister(c.steps, c.stepDuration, c.doorToggles, c.seatChanges)
	return c
}

// WatchDropped exports the bus's dropped delivery count.
func (c *Collector) WatchDropped(dropped func() uint64) {
	c.registry.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dropped_total",
		Help:      "Events not delivered because a subscriber inbox was full.",
	}, func() float64 { return float64(dropped()) }))
}

func (c *Collector) ObserveStep(d time.Duration) {
	c.steps.Inc()
	c.stepDuration.Observe(d.Seconds())
}

func (c *Collector) DoorToggled(open bool) {
	state := "closed"
	if open {
		state = "open"
	}
	c.doorToggles.WithLabelValues(state).Inc()
}

func (c *Collector) SeatChanged(sitting bool) {
	state := "standing"
	if sitting {
		state = "sitting"
	}
	c.seatChanges.WithLabelValues(state).Inc()
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
