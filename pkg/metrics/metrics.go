// Package metrics exposes Prometheus metrics for configuration loading.
//
// Every provider load is counted by configuration name and outcome, so a
// process that failed to start because of a bad literal leaves a trace in the
// registry dump:
//
//	cfg, err := analytics.Load(env)
//	metrics.RecordLoad("analytics", err)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Values of the outcome label.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	// ConfigLoads counts configuration loads.
	// Labels: config (analytics, stylepipeline), outcome (success/failure)
	ConfigLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ronfun",
			Subsystem: "config",
			Name:      "loads_total",
			Help:      "Total number of configuration loads",
		},
		[]string{"config", "outcome"},
	)

	// EventMappings reports how many symbolic events the last successful
	// analytics load resolved.
	EventMappings = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "ronfun",
			Subsystem: "config",
			Name:      "event_mappings",
			Help:      "Number of symbolic analytics events mapped to wire names",
		},
		[]string{"config"},
	)
)

// RecordLoad counts one load of the named configuration.
func RecordLoad(name string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	ConfigLoads.WithLabelValues(name, outcome).Inc()
}

// SetEventMappings records the size of a loaded event map.
func SetEventMappings(name string, n int) {
	EventMappings.WithLabelValues(name).Set(float64(n))
}
