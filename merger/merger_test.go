package merger_test

import (
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/spannerautoscaler/poller/catalog"
	"github.com/spannerautoscaler/poller/merger"
	"github.com/spannerautoscaler/poller/models"
)

var _ = Describe("Merger", func() {
	var (
		logger *lagertest.TestLogger
		mrg    *merger.Merger
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("merger-test")
		mrg = merger.New(logger)
	})

	Describe("Resolve", func() {
		It("returns one config per input entry", func() {
			raw := []byte(`[
				{"projectId":"p1","instanceId":"i1","scalerPubSubTopic":"t1"},
				{"projectId":"p2","instanceId":"i2","scalerPubSubTopic":"t2"},
				{"projectId":"p3","instanceId":"i3","scalerPubSubTopic":"t3"}
			]`)
			configs, err := mrg.Resolve(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(configs).To(HaveLen(3))
		})

		It("keeps an incomplete entry so it can fail individually downstream", func() {
			raw := []byte(`[
				{"projectId":"p1","instanceId":"i1","scalerPubSubTopic":"t1"},
				{"instanceId":"no-project"}
			]`)
			configs, err := mrg.Resolve(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(configs).To(HaveLen(2))
			Expect(configs[0].Validate()).To(Succeed())
			Expect(configs[1].Validate()).NotTo(Succeed())
		})

		It("applies system defaults for absent scaling parameters", func() {
			raw := []byte(`[{"projectId":"p1","instanceId":"i1","scalerPubSubTopic":"t1","minNodes":5}]`)
			configs, err := mrg.Resolve(raw)
			Expect(err).NotTo(HaveOccurred())

			conf := configs[0]
			Expect(conf.MinNodes).To(Equal(5))
			Expect(conf.MaxNodes).To(Equal(3))
			Expect(conf.StepSize).To(Equal(2))
			Expect(conf.OverloadStepSize).To(Equal(5))
			Expect(conf.ScaleOutCoolingMinutes).To(Equal(5))
			Expect(conf.ScaleInCoolingMinutes).To(Equal(30))
			Expect(conf.ScalingMethod).To(Equal("stepwise"))
		})

		It("attaches the catalog metrics when no overrides are given", func() {
			raw := []byte(`[{"projectId":"p1","instanceId":"i1","scalerPubSubTopic":"t1"}]`)
			configs, err := mrg.Resolve(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(configs[0].Metrics).To(Equal(catalog.Build("p1", "i1")))
		})

		It("treats an empty override list as identity", func() {
			raw := []byte(`[{"projectId":"p1","instanceId":"i1","scalerPubSubTopic":"t1","metrics":[]}]`)
			configs, err := mrg.Resolve(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(configs[0].Metrics).To(Equal(catalog.Build("p1", "i1")))
		})

		It("merges an override field-wise into the matching metric", func() {
			raw := []byte(`[{
				"projectId":"p1","instanceId":"i1","scalerPubSubTopic":"t1",
				"metrics":[{"name":"storage","regional_threshold":80}]
			}]`)
			configs, err := mrg.Resolve(raw)
			Expect(err).NotTo(HaveOccurred())

			var storage *models.MetricDefinition
			for i := range configs[0].Metrics {
				if configs[0].Metrics[i].Name == "storage" {
					storage = &configs[0].Metrics[i]
				}
			}
			Expect(storage).NotTo(BeNil())
			Expect(storage.RegionalThreshold).To(Equal(80.0))
			Expect(storage.MultiRegionalThreshold).To(Equal(75.0))
			Expect(storage.Filter).To(ContainSubstring("storage/utilization"))
		})

		It("silently drops an override naming no catalog metric", func() {
			raw := []byte(`[{
				"projectId":"p1","instanceId":"i1","scalerPubSubTopic":"t1",
				"metrics":[{"name":"no_such_metric","regional_threshold":10}]
			}]`)
			configs, err := mrg.Resolve(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(configs[0].Metrics).To(Equal(catalog.Build("p1", "i1")))
			Expect(logger.Buffer()).To(gbytes.Say("dropped-unmatched-metric-override"))
		})

		It("never creates a new metric from an override", func() {
			raw := []byte(`[{
				"projectId":"p1","instanceId":"i1","scalerPubSubTopic":"t1",
				"metrics":[{"name":"custom","filter":"x","period":30}]
			}]`)
			configs, err := mrg.Resolve(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(configs[0].Metrics).To(HaveLen(3))
		})

		It("fails the whole batch on unparseable payload", func() {
			_, err := mrg.Resolve([]byte(`{not json`))
			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&models.BatchParseError{}))
		})

		It("fails the whole batch when the payload violates the schema", func() {
			raw := []byte(`[{"projectId":"p1","instanceId":"i1","scalerPubSubTopic":"t1","minNodes":"five"}]`)
			_, err := mrg.Resolve(raw)
			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&models.BatchParseError{}))
		})

		It("fails the whole batch when the payload is not an array", func() {
			_, err := mrg.Resolve([]byte(`{"projectId":"p1"}`))
			Expect(err).To(HaveOccurred())
		})

		It("resolves an empty batch to an empty config list", func() {
			configs, err := mrg.Resolve([]byte(`[]`))
			Expect(err).NotTo(HaveOccurred())
			Expect(configs).To(BeEmpty())
		})
	})
})
