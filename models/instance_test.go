package models_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spannerautoscaler/poller/models"
)

var _ = Describe("InstanceConfig", func() {
	Describe("DefaultInstanceConfig", func() {
		It("carries the system default scaling parameters", func() {
			conf := models.DefaultInstanceConfig()
			Expect(conf.MinNodes).To(Equal(1))
			Expect(conf.MaxNodes).To(Equal(3))
			Expect(conf.StepSize).To(Equal(2))
			Expect(conf.OverloadStepSize).To(Equal(5))
			Expect(conf.ScaleOutCoolingMinutes).To(Equal(5))
			Expect(conf.ScaleInCoolingMinutes).To(Equal(30))
			Expect(conf.ScalingMethod).To(Equal("stepwise"))
		})
	})

	Describe("Validate", func() {
		var conf models.InstanceConfig

		BeforeEach(func() {
			conf = models.DefaultInstanceConfig()
			conf.ProjectID = "p1"
			conf.InstanceID = "i1"
			conf.ScalerPubSubTopic = "t1"
		})

		It("accepts a config with all identity fields", func() {
			Expect(conf.Validate()).To(Succeed())
		})

		It("rejects a missing projectId", func() {
			conf.ProjectID = ""
			err := conf.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&models.InstanceConfigError{}))
		})

		It("rejects a missing instanceId", func() {
			conf.InstanceID = ""
			Expect(conf.Validate()).NotTo(Succeed())
		})

		It("rejects a missing scalerPubSubTopic", func() {
			conf.ScalerPubSubTopic = ""
			Expect(conf.Validate()).NotTo(Succeed())
		})
	})

	Describe("InstanceDeclaration.ApplyTo", func() {
		It("keeps defaults for absent fields and overrides explicit ones", func() {
			minNodes := 5
			declaration := models.InstanceDeclaration{
				ProjectID:         "p1",
				InstanceID:        "i1",
				ScalerPubSubTopic: "t1",
				MinNodes:          &minNodes,
			}

			conf := models.DefaultInstanceConfig()
			declaration.ApplyTo(&conf)

			Expect(conf.MinNodes).To(Equal(5))
			Expect(conf.MaxNodes).To(Equal(3))
			Expect(conf.ProjectID).To(Equal("p1"))
		})
	})

	Describe("ScalingMessage", func() {
		It("serializes the evaluated metrics in place of the definitions", func() {
			conf := models.DefaultInstanceConfig()
			conf.ProjectID = "p1"
			conf.InstanceID = "i1"
			conf.ScalerPubSubTopic = "t1"
			conf.Metrics = []models.MetricDefinition{{Name: "high_priority_cpu"}}

			message := models.ScalingMessage{
				InstanceConfig: conf,
				CurrentNodes:   2,
				Regional:       true,
				Metrics: []models.EvaluatedMetric{
					{Name: "high_priority_cpu", Threshold: 65, Value: 70},
				},
			}

			body, err := json.Marshal(message)
			Expect(err).NotTo(HaveOccurred())

			var decoded map[string]interface{}
			Expect(json.Unmarshal(body, &decoded)).To(Succeed())
			Expect(decoded).To(HaveKeyWithValue("currentNodes", BeNumerically("==", 2)))
			Expect(decoded).To(HaveKeyWithValue("regional", BeTrue()))
			Expect(decoded).To(HaveKeyWithValue("minNodes", BeNumerically("==", 1)))

			metrics, ok := decoded["metrics"].([]interface{})
			Expect(ok).To(BeTrue())
			Expect(metrics).To(HaveLen(1))
			metric, ok := metrics[0].(map[string]interface{})
			Expect(ok).To(BeTrue())
			Expect(metric).To(HaveKeyWithValue("threshold", BeNumerically("==", 65)))
			Expect(metric).To(HaveKeyWithValue("value", BeNumerically("==", 70)))
			Expect(metric).NotTo(HaveKey("filter"))
		})
	})
})
