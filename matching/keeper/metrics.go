package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsCollector *Metrics
	metricsOnce      sync.Once
)

// Metrics holds the matching engine's Prometheus instrumentation.
type Metrics struct {
	MessagesProcessed  *prometheus.CounterVec
	CaseFirings        *prometheus.CounterVec
	FairnessTiesBroken *prometheus.CounterVec
	PartialMatchTrees  *prometheus.GaugeVec
}

// GetMetrics returns the singleton Metrics collector, registering it with
// the default Prometheus registry on first use.
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsCollector = newMetrics()
	})
	return metricsCollector
}

func newMetrics() *Metrics {
	m := &Metrics{
		MessagesProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "joinbox",
				Subsystem: "mailbox",
				Name:      "messages_processed_total",
				Help:      "Total messages processed by a mailbox",
			},
			[]string{"mailbox"},
		),
		CaseFirings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "joinbox",
				Subsystem: "mailbox",
				Name:      "case_firings_total",
				Help:      "Total winning firings, by case",
			},
			[]string{"mailbox", "case"},
		),
		FairnessTiesBroken: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "joinbox",
				Subsystem: "mailbox",
				Name:      "fairness_ties_broken_total",
				Help:      "Total arrivals where two or more cases tied on fairness key and were broken by case declaration order",
			},
			[]string{"mailbox"},
		),
		PartialMatchTrees: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "joinbox",
				Subsystem: "mailbox",
				Name:      "partial_match_tree_size",
				Help:      "Number of live partial-match tree nodes retained by a stateful-tree case",
			},
			[]string{"mailbox", "case"},
		),
	}
	prometheus.MustRegister(m.MessagesProcessed)
	prometheus.MustRegister(m.CaseFirings)
	prometheus.MustRegister(m.FairnessTiesBroken)
	prometheus.MustRegister(m.PartialMatchTrees)
	return m
}
