// Package catalog holds the built-in metric definitions evaluated for every
// instance. Building a catalog is pure template instantiation; overrides from
// the trigger payload are applied on top by the merger.
package catalog

import (
	"fmt"

	"github.com/spannerautoscaler/poller/models"
)

const (
	// All built-in metrics align on 60 second periods, summed across series
	// and reduced to the maximum aligned value.
	AlignmentPeriodSecs = 60
	DefaultReducer      = "REDUCE_SUM"
	DefaultAligner      = "ALIGN_MAX"

	HighPriorityCPUMetricName = "high_priority_cpu"
	RollingCPUMetricName      = "rolling_24_hr"
	StorageMetricName         = "storage"
)

// Build returns the canonical metric definitions for one instance, with query
// filters scoped to the given project and instance.
func Build(projectID, instanceID string) []models.MetricDefinition {
	scope := fmt.Sprintf(`resource.labels.instance_id="%s" AND resource.type="spanner_instance" AND project="%s"`,
		instanceID, projectID)

	return []models.MetricDefinition{
		{
			Name: HighPriorityCPUMetricName,
			Filter: fmt.Sprintf(`metric.type="spanner.googleapis.com/instance/cpu/utilization_by_priority" AND metric.label.priority="high" AND %s`,
				scope),
			Reducer:                DefaultReducer,
			Aligner:                DefaultAligner,
			Period:                 AlignmentPeriodSecs,
			RegionalThreshold:      65,
			MultiRegionalThreshold: 45,
		},
		{
			Name: RollingCPUMetricName,
			Filter: fmt.Sprintf(`metric.type="spanner.googleapis.com/instance/cpu/smoothed_utilization" AND %s`,
				scope),
			Reducer:                DefaultReducer,
			Aligner:                DefaultAligner,
			Period:                 AlignmentPeriodSecs,
			RegionalThreshold:      90,
			MultiRegionalThreshold: 90,
		},
		{
			Name: StorageMetricName,
			Filter: fmt.Sprintf(`metric.type="spanner.googleapis.com/instance/storage/utilization" AND %s`,
				scope),
			Reducer:                DefaultReducer,
			Aligner:                DefaultAligner,
			Period:                 AlignmentPeriodSecs,
			RegionalThreshold:      75,
			MultiRegionalThreshold: 75,
		},
	}
}
