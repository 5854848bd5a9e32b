package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

type Metrics struct {
	Requests    *prometheus.CounterVec
	Stale       *prometheus.CounterVec
	Rollbacks   prometheus.Counter
	DroppedPlay *prometheus.CounterVec
}

// New - creates the client counters and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_client_requests_total",
				Help: "Requests sent to the game server",
			},
			[]string{"operation", "outcome"},
		),
		Stale: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_client_stale_responses_total",
				Help: "Server replies discarded because local state was ahead",
			},
			[]string{"operation"},
		),
		Rollbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tictactoe_client_rollbacks_total",
				Help: "Optimistic moves reverted after a failed submission",
			},
		),
		DroppedPlay: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_client_dropped_plays_total",
				Help: "Plays rejected before reaching the network",
			},
			[]string{"reason"},
		),
	}

	reg.MustRegister(m.Requests, m.Stale, m.Rollbacks, m.DroppedPlay)

	return m
}

func (that *Metrics) Request(operation string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	that.Requests.WithLabelValues(operation, outcome).Inc()
}

func (that *Metrics) StaleResponse(operation string) {
	that.Stale.WithLabelValues(operation).Inc()
}

func (that *Metrics) Rollback() {
	that.Rollbacks.Inc()
}

func (that *Metrics) PlayDropped(reason string) {
	that.DroppedPlay.WithLabelValues(reason).Inc()
}
