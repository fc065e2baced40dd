package config_test

import (
	"bytes"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spannerautoscaler/poller/config"
)

var _ = Describe("Config", func() {
	var (
		conf    *config.Config
		err     error
		confYml string
	)

	Describe("LoadConfig", func() {
		JustBeforeEach(func() {
			conf, err = config.LoadConfig(bytes.NewReader([]byte(confYml)))
		})

		Context("with a complete configuration", func() {
			BeforeEach(func() {
				confYml = `
logging:
  level: debug
server:
  port: 9080
health:
  port: 9081
metadata:
  url: http://metadata.local
  retry_max_elapsed: 20s
monitoring:
  url: http://monitoring.local
  queries_per_second: 4
  burst: 2
publisher:
  url: http://pubsub.local
poller:
  worker_count: 8
circuit_breaker:
  consecutive_failure_count: 5
http_client_timeout: 10s
`
			})

			It("parses every section", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(conf.Logging.Level).To(Equal("debug"))
				Expect(conf.Server.Port).To(Equal(9080))
				Expect(conf.Health.Port).To(Equal(9081))
				Expect(conf.Metadata.URL).To(Equal("http://metadata.local"))
				Expect(conf.Metadata.RetryMaxElapsed).To(Equal(20 * time.Second))
				Expect(conf.Monitoring.URL).To(Equal("http://monitoring.local"))
				Expect(conf.Monitoring.QueriesPerSecond).To(Equal(4.0))
				Expect(conf.Monitoring.Burst).To(Equal(2))
				Expect(conf.Publisher.URL).To(Equal("http://pubsub.local"))
				Expect(conf.Poller.WorkerCount).To(Equal(8))
				Expect(conf.CircuitBreaker.ConsecutiveFailureCount).To(Equal(int64(5)))
				Expect(conf.HTTPClientTimeout).To(Equal(10 * time.Second))
			})
		})

		Context("with a minimal configuration", func() {
			BeforeEach(func() {
				confYml = `
metadata:
  url: http://metadata.local
monitoring:
  url: http://monitoring.local
publisher:
  url: http://pubsub.local
`
			})

			It("fills in the defaults", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(conf.Logging.Level).To(Equal("info"))
				Expect(conf.Server.Port).To(Equal(8080))
				Expect(conf.Health.Port).To(Equal(8081))
				Expect(conf.Metadata.RetryMaxElapsed).To(Equal(10 * time.Second))
				Expect(conf.Monitoring.QueriesPerSecond).To(Equal(10.0))
				Expect(conf.Monitoring.Burst).To(Equal(5))
				Expect(conf.Poller.WorkerCount).To(Equal(20))
				Expect(conf.CircuitBreaker.ConsecutiveFailureCount).To(Equal(int64(3)))
				Expect(conf.HTTPClientTimeout).To(Equal(5 * time.Second))
			})

			It("passes validation", func() {
				Expect(conf.Validate()).To(Succeed())
			})
		})

		Context("with invalid yaml", func() {
			BeforeEach(func() {
				confYml = `
 server:
port: [
`
			})

			It("returns an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		Context("with an unknown field", func() {
			BeforeEach(func() {
				confYml = `
metadata:
  url: http://metadata.local
  retires: 3
`
			})

			It("returns an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Validate", func() {
		BeforeEach(func() {
			conf = &config.Config{}
			conf.Metadata.URL = "http://metadata.local"
			conf.Metadata.RetryMaxElapsed = 10 * time.Second
			conf.Monitoring.URL = "http://monitoring.local"
			conf.Monitoring.QueriesPerSecond = 10
			conf.Monitoring.Burst = 5
			conf.Publisher.URL = "http://pubsub.local"
			conf.Poller.WorkerCount = 20
			conf.CircuitBreaker.ConsecutiveFailureCount = 3
			conf.HTTPClientTimeout = 5 * time.Second
		})

		It("accepts a complete configuration", func() {
			Expect(conf.Validate()).To(Succeed())
		})

		It("requires the metadata url", func() {
			conf.Metadata.URL = ""
			Expect(conf.Validate()).To(MatchError(MatchRegexp("metadata.url")))
		})

		It("requires the monitoring url", func() {
			conf.Monitoring.URL = ""
			Expect(conf.Validate()).To(MatchError(MatchRegexp("monitoring.url")))
		})

		It("requires the publisher url", func() {
			conf.Publisher.URL = ""
			Expect(conf.Validate()).To(MatchError(MatchRegexp("publisher.url")))
		})

		It("requires a positive worker count", func() {
			conf.Poller.WorkerCount = 0
			Expect(conf.Validate()).To(MatchError(MatchRegexp("worker_count")))
		})

		It("requires a positive breaker threshold", func() {
			conf.CircuitBreaker.ConsecutiveFailureCount = 0
			Expect(conf.Validate()).To(MatchError(MatchRegexp("consecutive_failure_count")))
		})

		It("requires a positive http client timeout", func() {
			conf.HTTPClientTimeout = 0
			Expect(conf.Validate()).To(MatchError(MatchRegexp("http_client_timeout")))
		})

		It("requires a positive query rate", func() {
			conf.Monitoring.QueriesPerSecond = 0
			Expect(conf.Validate()).To(MatchError(MatchRegexp("queries_per_second")))
		})
	})
})
