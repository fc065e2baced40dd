// Package monitoring queries the metrics backend for time-windowed aggregated
// metric samples.
package monitoring

import (
	"context"
	"time"

	"github.com/spannerautoscaler/poller/models"
)

// Sampler returns the maximum aggregated value observed for one metric
// definition over the given look-back window, as a fraction in [0,1].
type Sampler interface {
	QueryMax(ctx context.Context, projectID string, def models.MetricDefinition, window time.Duration) (float64, error)
}
