package catalog_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spannerautoscaler/poller/catalog"
	"github.com/spannerautoscaler/poller/models"
)

var _ = Describe("Build", func() {
	var definitions []models.MetricDefinition

	BeforeEach(func() {
		definitions = catalog.Build("p1", "i1")
	})

	It("returns the three built-in metrics", func() {
		names := make([]string, 0, len(definitions))
		for _, def := range definitions {
			names = append(names, def.Name)
		}
		Expect(names).To(Equal([]string{"high_priority_cpu", "rolling_24_hr", "storage"}))
	})

	It("uses unique names", func() {
		seen := map[string]bool{}
		for _, def := range definitions {
			Expect(seen).NotTo(HaveKey(def.Name))
			seen[def.Name] = true
		}
	})

	It("scopes every filter to the given project and instance", func() {
		for _, def := range definitions {
			Expect(def.Filter).To(ContainSubstring(`resource.labels.instance_id="i1"`))
			Expect(def.Filter).To(ContainSubstring(`project="p1"`))
		}
	})

	It("aligns on 60 second periods with sum-then-max aggregation", func() {
		for _, def := range definitions {
			Expect(def.Period).To(Equal(60))
			Expect(def.Reducer).To(Equal("REDUCE_SUM"))
			Expect(def.Aligner).To(Equal("ALIGN_MAX"))
		}
	})

	It("carries distinct topology thresholds for high priority cpu", func() {
		Expect(definitions[0].RegionalThreshold).To(Equal(65.0))
		Expect(definitions[0].MultiRegionalThreshold).To(Equal(45.0))
	})

	It("carries the storage thresholds", func() {
		Expect(definitions[2].RegionalThreshold).To(Equal(75.0))
		Expect(definitions[2].MultiRegionalThreshold).To(Equal(75.0))
	})

	It("is deterministic", func() {
		Expect(catalog.Build("p1", "i1")).To(Equal(definitions))
	})
})
