package fact

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

//nolint:gochecknoglobals
var (
	fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "numclass",
		Subsystem: "fact",
		Name:      "fetch_total",
		Help:      "Upstream fun fact fetches, by outcome.",
	}, []string{"outcome"})

	fetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "numclass",
		Subsystem: "fact",
		Name:      "fetch_duration_seconds",
		Help:      "Upstream fun fact fetch latency.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	})
)

type meteredProvider struct {
	next Provider
}

// WithMetrics counts outcomes and latency of next. Place it below the cache
// so only real upstream calls are measured.
func WithMetrics(next Provider) Provider {
	return meteredProvider{next: next}
}

func (p meteredProvider) Fact(ctx context.Context, n uint64) (string, error) {
	start := time.Now()

	text, err := p.next.Fact(ctx, n)

	fetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		fetchTotal.WithLabelValues(outcomeError).Inc()

		return "", err //nolint:wrapcheck
	}

	fetchTotal.WithLabelValues(outcomeOK).Inc()

	return text, nil
}
