package models

import "fmt"

const (
	DefaultMinNodes               = 1
	DefaultMaxNodes               = 3
	DefaultStepSize               = 2
	DefaultOverloadStepSize       = 5
	DefaultScaleOutCoolingMinutes = 5
	DefaultScaleInCoolingMinutes  = 30
	DefaultScalingMethod          = "stepwise"
)

// InstanceConfig is the fully resolved configuration for one monitored
// instance. It is built fresh on every poll from the raw declaration plus
// system defaults and is never persisted.
type InstanceConfig struct {
	ProjectID              string             `json:"projectId"`
	InstanceID             string             `json:"instanceId"`
	ScalerPubSubTopic      string             `json:"scalerPubSubTopic"`
	MinNodes               int                `json:"minNodes"`
	MaxNodes               int                `json:"maxNodes"`
	StepSize               int                `json:"stepSize"`
	OverloadStepSize       int                `json:"overloadStepSize"`
	ScaleOutCoolingMinutes int                `json:"scaleOutCoolingMinutes"`
	ScaleInCoolingMinutes  int                `json:"scaleInCoolingMinutes"`
	ScalingMethod          string             `json:"scalingMethod"`
	Metrics                []MetricDefinition `json:"metrics"`
}

func DefaultInstanceConfig() InstanceConfig {
	return InstanceConfig{
		MinNodes:               DefaultMinNodes,
		MaxNodes:               DefaultMaxNodes,
		StepSize:               DefaultStepSize,
		OverloadStepSize:       DefaultOverloadStepSize,
		ScaleOutCoolingMinutes: DefaultScaleOutCoolingMinutes,
		ScaleInCoolingMinutes:  DefaultScaleInCoolingMinutes,
		ScalingMethod:          DefaultScalingMethod,
	}
}

// Validate checks the identity fields required to process the instance.
// A violation fails this instance only, never the whole batch.
func (c *InstanceConfig) Validate() error {
	if c.ProjectID == "" {
		return NewInstanceConfigError(c.ProjectID, c.InstanceID, "projectId is empty")
	}
	if c.InstanceID == "" {
		return NewInstanceConfigError(c.ProjectID, c.InstanceID, "instanceId is empty")
	}
	if c.ScalerPubSubTopic == "" {
		return NewInstanceConfigError(c.ProjectID, c.InstanceID, "scalerPubSubTopic is empty")
	}
	return nil
}

// InstanceDeclaration is one raw entry of the trigger payload. Scaling
// parameters are pointers so that absent fields fall back to defaults.
type InstanceDeclaration struct {
	ProjectID              string           `json:"projectId"`
	InstanceID             string           `json:"instanceId"`
	ScalerPubSubTopic      string           `json:"scalerPubSubTopic"`
	MinNodes               *int             `json:"minNodes"`
	MaxNodes               *int             `json:"maxNodes"`
	StepSize               *int             `json:"stepSize"`
	OverloadStepSize       *int             `json:"overloadStepSize"`
	ScaleOutCoolingMinutes *int             `json:"scaleOutCoolingMinutes"`
	ScaleInCoolingMinutes  *int             `json:"scaleInCoolingMinutes"`
	ScalingMethod          *string          `json:"scalingMethod"`
	Metrics                []MetricOverride `json:"metrics"`
}

// ApplyTo merges the declaration over the given config. Explicit fields win,
// absent fields keep the config's values. The metric override list is handled
// separately by the merger and is deliberately not applied here.
func (d *InstanceDeclaration) ApplyTo(conf *InstanceConfig) {
	conf.ProjectID = d.ProjectID
	conf.InstanceID = d.InstanceID
	conf.ScalerPubSubTopic = d.ScalerPubSubTopic
	if d.MinNodes != nil {
		conf.MinNodes = *d.MinNodes
	}
	if d.MaxNodes != nil {
		conf.MaxNodes = *d.MaxNodes
	}
	if d.StepSize != nil {
		conf.StepSize = *d.StepSize
	}
	if d.OverloadStepSize != nil {
		conf.OverloadStepSize = *d.OverloadStepSize
	}
	if d.ScaleOutCoolingMinutes != nil {
		conf.ScaleOutCoolingMinutes = *d.ScaleOutCoolingMinutes
	}
	if d.ScaleInCoolingMinutes != nil {
		conf.ScaleInCoolingMinutes = *d.ScaleInCoolingMinutes
	}
	if d.ScalingMethod != nil {
		conf.ScalingMethod = *d.ScalingMethod
	}
}

// ScalingMessage is the payload dispatched per instance: the resolved config
// with the metrics field replaced by the evaluated records, plus the live
// capacity and topology read from metadata.
type ScalingMessage struct {
	InstanceConfig
	CurrentNodes int               `json:"currentNodes"`
	Regional     bool              `json:"regional"`
	Metrics      []EvaluatedMetric `json:"metrics"`
}

func (m ScalingMessage) String() string {
	return fmt.Sprintf("%s/%s currentNodes=%d regional=%t metrics=%d",
		m.ProjectID, m.InstanceID, m.CurrentNodes, m.Regional, len(m.Metrics))
}
