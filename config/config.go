package config

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/spannerautoscaler/poller/helpers"
)

const (
	DefaultLoggingLevel                   = "info"
	DefaultServerPort                     = 8080
	DefaultHealthServerPort               = 8081
	DefaultPollerWorkerCount              = 20
	DefaultBreakerConsecutiveFailureCount = 3
	DefaultMetadataRetryMaxElapsed        = 10 * time.Second
	DefaultMonitoringQueriesPerSecond     = 10
	DefaultMonitoringBurst                = 5
)

var DefaultHTTPClientTimeout = 5 * time.Second

type MetadataConfig struct {
	URL             string        `yaml:"url"`
	RetryMaxElapsed time.Duration `yaml:"retry_max_elapsed"`
}

type MonitoringConfig struct {
	URL              string  `yaml:"url"`
	QueriesPerSecond float64 `yaml:"queries_per_second"`
	Burst            int     `yaml:"burst"`
}

type PublisherConfig struct {
	URL string `yaml:"url"`
}

type PollerConfig struct {
	WorkerCount int `yaml:"worker_count"`
}

type CircuitBreakerConfig struct {
	ConsecutiveFailureCount int64 `yaml:"consecutive_failure_count"`
}

type Config struct {
	Logging           helpers.LoggingConfig `yaml:"logging"`
	Server            helpers.ServerConfig  `yaml:"server"`
	Health            helpers.ServerConfig  `yaml:"health"`
	Metadata          MetadataConfig        `yaml:"metadata"`
	Monitoring        MonitoringConfig      `yaml:"monitoring"`
	Publisher         PublisherConfig       `yaml:"publisher"`
	Poller            PollerConfig          `yaml:"poller"`
	CircuitBreaker    CircuitBreakerConfig  `yaml:"circuit_breaker"`
	HTTPClientTimeout time.Duration         `yaml:"http_client_timeout"`
}

func defaultConfig() Config {
	return Config{
		Logging: helpers.LoggingConfig{
			Level: DefaultLoggingLevel,
		},
		Server: helpers.ServerConfig{
			Port: DefaultServerPort,
		},
		Health: helpers.ServerConfig{
			Port: DefaultHealthServerPort,
		},
		Metadata: MetadataConfig{
			RetryMaxElapsed: DefaultMetadataRetryMaxElapsed,
		},
		Monitoring: MonitoringConfig{
			QueriesPerSecond: DefaultMonitoringQueriesPerSecond,
			Burst:            DefaultMonitoringBurst,
		},
		Poller: PollerConfig{
			WorkerCount: DefaultPollerWorkerCount,
		},
		CircuitBreaker: CircuitBreakerConfig{
			ConsecutiveFailureCount: DefaultBreakerConsecutiveFailureCount,
		},
		HTTPClientTimeout: DefaultHTTPClientTimeout,
	}
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := defaultConfig()

	bytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	err = yaml.UnmarshalStrict(bytes, &conf)
	if err != nil {
		return nil, err
	}

	return &conf, nil
}

func (c *Config) Validate() error {
	if c.Metadata.URL == "" {
		return fmt.Errorf("Configuration error: metadata.url is empty")
	}
	if c.Monitoring.URL == "" {
		return fmt.Errorf("Configuration error: monitoring.url is empty")
	}
	if c.Publisher.URL == "" {
		return fmt.Errorf("Configuration error: publisher.url is empty")
	}
	if c.Poller.WorkerCount <= 0 {
		return fmt.Errorf("Configuration error: poller.worker_count is less-equal than 0")
	}
	if c.CircuitBreaker.ConsecutiveFailureCount <= 0 {
		return fmt.Errorf("Configuration error: circuit_breaker.consecutive_failure_count is less-equal than 0")
	}
	if c.HTTPClientTimeout <= 0 {
		return fmt.Errorf("Configuration error: http_client_timeout is less-equal than 0")
	}
	if c.Monitoring.QueriesPerSecond <= 0 {
		return fmt.Errorf("Configuration error: monitoring.queries_per_second is less-equal than 0")
	}
	return nil
}
