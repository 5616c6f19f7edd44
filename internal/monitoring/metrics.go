// Package monitoring exposes Prometheus metrics for backtest and
// optimization runs.
package monitoring

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PositionsClosed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enginecore_positions_closed_total",
			Help: "Total number of positions closed by the backtest engine",
		},
		[]string{"symbol", "side", "reason"},
	)

	PositionQuoteDelta = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enginecore_position_quote_delta",
			Help:    "Realized quote-currency profit or loss per closed position",
			Buckets: prometheus.LinearBuckets(-1000, 100, 20),
		},
		[]string{"symbol"},
	)

	BacktestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enginecore_backtest_duration_seconds",
			Help:    "Wall-clock duration of a single Trade() simulation",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
		},
		[]string{"symbol"},
	)

	GenerationFitness = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "enginecore_generation_best_fitness",
			Help: "Best fitness value seen in the current generation",
		},
		[]string{"job"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enginecore_generation_duration_seconds",
			Help:    "Wall-clock duration of one genetic-algorithm generation",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
		},
		[]string{"job"},
	)

	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enginecore_individual_evaluations_total",
			Help: "Total number of individuals evaluated by the genetic algorithm",
		},
		[]string{"job"},
	)
)

// RecordPosition records one closed position against the standard metric
// set: the counter, and (if the position has a well-formed quote delta)
// the profit/loss histogram.
func RecordPosition(symbol, side, reason string, quoteDelta float64) {
	PositionsClosed.WithLabelValues(symbol, side, reason).Inc()
	if math.IsNaN(quoteDelta) || math.IsInf(quoteDelta, 0) {
		return
	}
	PositionQuoteDelta.WithLabelValues(symbol).Observe(quoteDelta)
}

// RecordGeneration records one generation's best fitness and duration for
// an optimization job.
func RecordGeneration(job string, bestFitness, seconds float64, evaluated int) {
	GenerationFitness.WithLabelValues(job).Set(bestFitness)
	GenerationDuration.WithLabelValues(job).Observe(seconds)
	EvaluationsTotal.WithLabelValues(job).Add(float64(evaluated))
}
