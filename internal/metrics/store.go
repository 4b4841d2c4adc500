package metrics

import (
	"time"

	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hirely",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Entity access operations by outcome.",
		},
		[]string{"entity", "operation", "outcome"},
	)

	storeOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hirely",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Entity access latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"entity", "operation"},
	)
)

// Outcome labels
const (
	OutcomeOK       = "ok"
	OutcomeNoMatch  = "no_match"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// ObserveStoreOp records one entity access call. A nil err with matched false
// counts as no_match; constraint and validation errors count as rejected.
func ObserveStoreOp(entity, operation string, start time.Time, matched bool, err error) {
	storeOpDuration.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())
	storeOpsTotal.WithLabelValues(entity, operation, outcomeOf(matched, err)).Inc()
}

func outcomeOf(matched bool, err error) string {
	switch {
	case err == nil && matched:
		return OutcomeOK
	case err == nil:
		return OutcomeNoMatch
	case errx.IsType(err, errx.TypeValidation), errx.IsType(err, errx.TypeConflict):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}

func statusOf(err error) int {
	return errx.HTTPStatusOf(err)
}
