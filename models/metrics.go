package models

import "strings"

// MetricDefinition identifies one measurable signal of an instance. Name is
// unique within an instance's metric list; exactly one of the two thresholds
// applies per evaluation, selected by the instance topology.
type MetricDefinition struct {
	Name                   string  `json:"name"`
	Filter                 string  `json:"filter"`
	Reducer                string  `json:"reducer"`
	Aligner                string  `json:"aligner"`
	Period                 int     `json:"period"`
	RegionalThreshold      float64 `json:"regional_threshold"`
	MultiRegionalThreshold float64 `json:"multi_regional_threshold"`
}

// MetricOverride is a partial MetricDefinition supplied with an instance
// declaration, applied to the catalog definition of the same name.
type MetricOverride struct {
	Name                   string   `json:"name"`
	Filter                 *string  `json:"filter"`
	Reducer                *string  `json:"reducer"`
	Aligner                *string  `json:"aligner"`
	Period                 *int     `json:"period"`
	RegionalThreshold      *float64 `json:"regional_threshold"`
	MultiRegionalThreshold *float64 `json:"multi_regional_threshold"`
}

// ApplyTo replaces the definition's fields with the override's explicit
// fields; unspecified fields keep the catalog values.
func (o *MetricOverride) ApplyTo(def *MetricDefinition) {
	if o.Filter != nil {
		def.Filter = *o.Filter
	}
	if o.Reducer != nil {
		def.Reducer = *o.Reducer
	}
	if o.Aligner != nil {
		def.Aligner = *o.Aligner
	}
	if o.Period != nil {
		def.Period = *o.Period
	}
	if o.RegionalThreshold != nil {
		def.RegionalThreshold = *o.RegionalThreshold
	}
	if o.MultiRegionalThreshold != nil {
		def.MultiRegionalThreshold = *o.MultiRegionalThreshold
	}
}

// InstanceMetadata is the live capacity and topology of an instance, fetched
// per poll and never cached across polls.
type InstanceMetadata struct {
	NodeCount  int    `json:"nodeCount"`
	ConfigPath string `json:"configPath"`
}

// Regional reports whether the instance runs a regional topology, derived
// from the last segment of the instance config path.
func (m InstanceMetadata) Regional() bool {
	segments := strings.Split(m.ConfigPath, "/")
	return strings.HasPrefix(segments[len(segments)-1], "regional")
}

// EvaluatedMetric is the per-metric output record: the observed maximum value
// and the threshold that applied. The breach verdict is left to the consumer.
type EvaluatedMetric struct {
	Name      string  `json:"name"`
	Threshold float64 `json:"threshold"`
	Value     float64 `json:"value"`
}
