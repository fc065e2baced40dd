// Package evaluator samples each resolved metric of an instance and selects
// the threshold applicable to the instance's topology. It reports facts, not
// verdicts: the breach decision belongs to the downstream scaler.
package evaluator

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager/v3"

	"github.com/spannerautoscaler/poller/healthendpoint"
	"github.com/spannerautoscaler/poller/models"
	"github.com/spannerautoscaler/poller/monitoring"
)

// WindowPeriods is the look-back window length in multiples of a metric's
// alignment period.
const WindowPeriods = 5

type Evaluator struct {
	logger      lager.Logger
	sampler     monitoring.Sampler
	collector   healthendpoint.PollStatusCollector
	callTimeout time.Duration
}

func New(logger lager.Logger, sampler monitoring.Sampler, collector healthendpoint.PollStatusCollector, callTimeout time.Duration) *Evaluator {
	return &Evaluator{
		logger:      logger.Session("evaluator"),
		sampler:     sampler,
		collector:   collector,
		callTimeout: callTimeout,
	}
}

// Evaluate samples every metric of the instance sequentially. A metric whose
// sample query fails is skipped so that sibling metrics keep their results;
// the returned list may therefore be shorter than the definition list.
func (e *Evaluator) Evaluate(ctx context.Context, instance models.InstanceConfig, meta models.InstanceMetadata) []models.EvaluatedMetric {
	evaluated := make([]models.EvaluatedMetric, 0, len(instance.Metrics))

	for _, def := range instance.Metrics {
		window := time.Duration(def.Period) * time.Second * WindowPeriods

		maxValue, err := e.queryMax(ctx, instance.ProjectID, def, window)
		if err != nil {
			e.collector.IncMetricsSkipped()
			e.logger.Error("skipping-metric", err, lager.Data{
				"projectId":  instance.ProjectID,
				"instanceId": instance.InstanceID,
				"metric":     def.Name,
			})
			continue
		}

		value := maxValue * 100
		threshold := def.MultiRegionalThreshold
		if meta.Regional() {
			threshold = def.RegionalThreshold
		}

		data := lager.Data{
			"projectId":  instance.ProjectID,
			"instanceId": instance.InstanceID,
			"metric":     def.Name,
			"threshold":  threshold,
			"value":      value,
		}
		if value > threshold {
			e.logger.Info("metric-above-threshold", data)
		} else {
			e.logger.Debug("metric-under-threshold", data)
		}

		evaluated = append(evaluated, models.EvaluatedMetric{
			Name:      def.Name,
			Threshold: threshold,
			Value:     value,
		})
	}

	return evaluated
}

func (e *Evaluator) queryMax(ctx context.Context, projectID string, def models.MetricDefinition, window time.Duration) (float64, error) {
	queryCtx := ctx
	if e.callTimeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, e.callTimeout)
		defer cancel()
	}
	return e.sampler.QueryMax(queryCtx, projectID, def, window)
}
