// Package merger resolves the raw trigger payload into per-instance
// configurations: system defaults, then the instance declaration, then
// per-metric overrides, in that precedence order.
package merger

import (
	"encoding/json"
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/xeipuuv/gojsonschema"

	"github.com/spannerautoscaler/poller/catalog"
	"github.com/spannerautoscaler/poller/models"
)

type Merger struct {
	logger       lager.Logger
	schemaLoader gojsonschema.JSONLoader
}

func New(logger lager.Logger) *Merger {
	return &Merger{
		logger:       logger.Session("merger"),
		schemaLoader: gojsonschema.NewStringLoader(batchSchema),
	}
}

// Resolve validates the payload and returns one fully resolved InstanceConfig
// per input entry. A malformed payload fails the whole batch; nothing else
// does.
func (m *Merger) Resolve(raw []byte) ([]models.InstanceConfig, error) {
	if err := m.validate(raw); err != nil {
		return nil, &models.BatchParseError{Err: err}
	}

	var declarations []models.InstanceDeclaration
	if err := json.Unmarshal(raw, &declarations); err != nil {
		return nil, &models.BatchParseError{Err: err}
	}

	configs := make([]models.InstanceConfig, 0, len(declarations))
	for i := range declarations {
		configs = append(configs, m.resolveInstance(&declarations[i]))
	}
	m.logger.Debug("resolved-batch", lager.Data{"instances": len(configs)})
	return configs, nil
}

func (m *Merger) resolveInstance(declaration *models.InstanceDeclaration) models.InstanceConfig {
	conf := models.DefaultInstanceConfig()
	declaration.ApplyTo(&conf)
	conf.Metrics = catalog.Build(conf.ProjectID, conf.InstanceID)
	m.applyOverrides(&conf, declaration.Metrics)
	return conf
}

// applyOverrides merges each override into the catalog metric of the same
// name. An override naming no catalog metric is dropped: it never creates a
// new metric.
func (m *Merger) applyOverrides(conf *models.InstanceConfig, overrides []models.MetricOverride) {
	for i := range overrides {
		override := &overrides[i]
		matched := false
		for j := range conf.Metrics {
			if conf.Metrics[j].Name == override.Name {
				override.ApplyTo(&conf.Metrics[j])
				matched = true
				break
			}
		}
		if !matched {
			m.logger.Debug("dropped-unmatched-metric-override", lager.Data{
				"projectId":  conf.ProjectID,
				"instanceId": conf.InstanceID,
				"metric":     override.Name,
			})
		}
	}
}

func (m *Merger) validate(raw []byte) error {
	result, err := gojsonschema.Validate(m.schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return err
	}
	if !result.Valid() {
		descriptions := make([]string, 0, len(result.Errors()))
		for _, resultError := range result.Errors() {
			descriptions = append(descriptions, fmt.Sprintf("%s: %s", resultError.Context().String(), resultError.Description()))
		}
		return fmt.Errorf("payload violates batch schema: %s", strings.Join(descriptions, ", "))
	}
	return nil
}
