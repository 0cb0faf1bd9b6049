// Package metrics hosts the prometheus collectors the analysis engine
// reports traversal activity to, mirroring the teacher's own
// overlay/node/xatu service metrics: a handful of counters registered once
// at startup and incremented inline from the hot path.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Engine are the collectors one analysis.Engine reports to. Construct with
// New and pass the result to analysis.NewEngine; pass nil to disable
// reporting entirely.
type Engine struct {
	Traversals   prometheus.Counter
	Instructions prometheus.Counter
	FatalErrors  *prometheus.CounterVec
	Disqualified *prometheus.CounterVec
}

// New builds and registers an Engine's collectors against reg. Pass
// prometheus.NewRegistry() in tests to avoid colliding with the default
// global registry.
func New(reg prometheus.Registerer) (*Engine, error) {
	m := &Engine{
		Traversals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "manifest_analyzer_traversals_total",
			Help: "Total number of manifest traversals run.",
		}),
		Instructions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "manifest_analyzer_instructions_total",
			Help: "Total number of instructions processed across all traversals.",
		}),
		FatalErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "manifest_analyzer_fatal_errors_total",
			Help: "Total number of traversals aborted by a fatal error, by kind.",
		}, []string{"kind"}),
		Disqualified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "manifest_analyzer_analyzer_disqualified_total",
			Help: "Total number of times an analyzer's permission broke, by analyzer.",
		}, []string{"analyzer"}),
	}
	for _, c := range []prometheus.Collector{m.Traversals, m.Instructions, m.FatalErrors, m.Disqualified} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}
	return m, nil
}
