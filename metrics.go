// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects extraction metrics for one or more [*Handler].
//
// A nil *Metrics is valid and records nothing.
//
// Construct using [NewMetrics].
type Metrics struct {
	// Rejections counts rejected requests by operation, protocol,
	// status code, and tuple position (0 when not a tuple rejection).
	Rejections *prometheus.CounterVec

	// Duration observes the extraction latency by operation and outcome.
	Duration *prometheus.HistogramVec
}

// NewMetrics creates a [*Metrics] and registers it with reg.
//
// Pass [prometheus.DefaultRegisterer] to expose the metrics with the
// default promhttp handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "extract",
				Name:      "rejections_total",
				Help:      "Number of requests rejected during extraction.",
			},
			[]string{"operation", "protocol", "status", "position"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "extract",
				Name:      "extraction_duration_seconds",
				Help:      "Time spent extracting the operation input.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation", "outcome"},
		),
	}
	reg.MustRegister(m.Rejections, m.Duration)
	return m
}

// observeExtraction records the outcome of an extraction.
//
// The status is the status code of the rendered rejection and is
// ignored when rejection is nil.
func (m *Metrics) observeExtraction(operation, protocol string, elapsed time.Duration, rejection error, status int) {
	if m == nil {
		return
	}
	outcome := "ok"
	if rejection != nil {
		outcome = "rejected"
		m.Rejections.WithLabelValues(
			operation,
			protocol,
			strconv.Itoa(status),
			strconv.Itoa(rejectionPosition(rejection)),
		).Inc()
	}
	m.Duration.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
}

// rejectionPosition returns the position of the first tuple rejection
// in the chain of err, or 0 when there is none.
func rejectionPosition(err error) int {
	var positioner interface{ Position() int }
	if errors.As(err, &positioner) {
		return positioner.Position()
	}
	return 0
}
