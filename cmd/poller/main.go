package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"code.cloudfoundry.org/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/spannerautoscaler/poller/config"
	"github.com/spannerautoscaler/poller/evaluator"
	"github.com/spannerautoscaler/poller/healthendpoint"
	"github.com/spannerautoscaler/poller/helpers"
	"github.com/spannerautoscaler/poller/merger"
	"github.com/spannerautoscaler/poller/metadata"
	"github.com/spannerautoscaler/poller/monitoring"
	"github.com/spannerautoscaler/poller/poller"
	"github.com/spannerautoscaler/poller/publisher"
	"github.com/spannerautoscaler/poller/server"
)

func main() {
	var path string
	flag.StringVar(&path, "c", "", "config file")
	flag.Parse()
	if path == "" {
		fmt.Fprintln(os.Stderr, "missing config file")
		os.Exit(1)
	}

	configFile, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to open config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}

	conf, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to read config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}
	_ = configFile.Close()

	err = conf.Validate()
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		os.Exit(1)
	}

	logger := helpers.InitLoggerFromConfig(&conf.Logging, "poller")
	pclock := clock.NewClock()
	httpClient := &http.Client{Timeout: conf.HTTPClientTimeout}

	httpStatusCollector := healthendpoint.NewHTTPStatusCollector("autoscaler", "poller")
	pollStatusCollector := healthendpoint.NewPollStatusCollector("autoscaler", "poller")
	promRegistry := prometheus.NewRegistry()
	healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{
		httpStatusCollector,
		pollStatusCollector,
	}, true, logger.Session("poller-prometheus"))

	metadataClient := metadata.NewClient(logger, httpClient, conf.Metadata.URL, conf.Metadata.RetryMaxElapsed)
	monitoringClient := monitoring.NewClient(logger, httpClient, conf.Monitoring.URL, conf.Monitoring.QueriesPerSecond, conf.Monitoring.Burst)
	publisherClient := publisher.NewClient(logger, httpClient, conf.Publisher.URL)

	batchMerger := merger.New(logger)
	thresholdEvaluator := evaluator.New(logger, monitoringClient, pollStatusCollector, conf.HTTPClientTimeout)
	pollCycle := poller.New(logger, pclock, batchMerger, metadataClient, thresholdEvaluator, publisherClient,
		pollStatusCollector, conf.Poller.WorkerCount, conf.HTTPClientTimeout, conf.CircuitBreaker.ConsecutiveFailureCount)

	httpServer, err := server.NewServer(logger.Session("http_server"), conf.Server, pollCycle, httpStatusCollector)
	if err != nil {
		logger.Error("failed to create http server", err)
		os.Exit(1)
	}

	healthServer, err := healthendpoint.NewServer(logger.Session("health_server"), conf.Health, promRegistry)
	if err != nil {
		logger.Error("failed to create health server", err)
		os.Exit(1)
	}

	members := grouper.Members{
		{Name: "http_server", Runner: httpServer},
		{Name: "health_server", Runner: healthServer},
	}

	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))
	logger.Info("started")

	err = <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}
	logger.Info("exited")
}
