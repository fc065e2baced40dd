// Package poller drives one poll cycle: resolve the batch, then per instance
// fetch metadata, evaluate metrics and dispatch the scaling message. Each
// instance is an independent unit of work; its failure is absorbed and logged
// and never blocks a sibling.
package poller

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	circuit "github.com/rubyist/circuitbreaker"

	"github.com/spannerautoscaler/poller/evaluator"
	"github.com/spannerautoscaler/poller/healthendpoint"
	"github.com/spannerautoscaler/poller/merger"
	"github.com/spannerautoscaler/poller/metadata"
	"github.com/spannerautoscaler/poller/models"
	"github.com/spannerautoscaler/poller/publisher"
)

type Poller struct {
	logger                  lager.Logger
	clk                     clock.Clock
	merger                  *merger.Merger
	metadataFetcher         metadata.Fetcher
	evaluator               *evaluator.Evaluator
	publisher               publisher.Publisher
	collector               healthendpoint.PollStatusCollector
	workerCount             int
	callTimeout             time.Duration
	consecutiveFailureCount int64

	breakerLock sync.Mutex
	breakers    map[string]*circuit.Breaker
}

func New(logger lager.Logger, clk clock.Clock, mrg *merger.Merger, metadataFetcher metadata.Fetcher,
	eval *evaluator.Evaluator, pub publisher.Publisher, collector healthendpoint.PollStatusCollector,
	workerCount int, callTimeout time.Duration, consecutiveFailureCount int64) *Poller {
	return &Poller{
		logger:                  logger.Session("poller"),
		clk:                     clk,
		merger:                  mrg,
		metadataFetcher:         metadataFetcher,
		evaluator:               eval,
		publisher:               pub,
		collector:               collector,
		workerCount:             workerCount,
		callTimeout:             callTimeout,
		consecutiveFailureCount: consecutiveFailureCount,
		breakers:                make(map[string]*circuit.Breaker),
	}
}

// Run executes one full poll cycle over the raw trigger payload. Only a
// payload that fails to parse returns an error; per-instance failures are
// counted and logged.
func (p *Poller) Run(ctx context.Context, raw []byte) error {
	start := p.clk.Now()

	configs, err := p.merger.Resolve(raw)
	if err != nil {
		p.logger.Error("resolve-batch", err)
		return err
	}
	p.collector.IncPollCycles()

	instances := make(chan models.InstanceConfig, len(configs))
	for _, conf := range configs {
		instances <- conf
	}
	close(instances)

	workers := p.workerCount
	if workers > len(configs) {
		workers = len(configs)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for instance := range instances {
				p.processInstance(ctx, instance)
			}
		}()
	}
	wg.Wait()

	p.logger.Info("poll-cycle-complete", lager.Data{
		"instances": len(configs),
		"duration":  p.clk.Since(start).String(),
	})
	return nil
}

func (p *Poller) processInstance(ctx context.Context, instance models.InstanceConfig) {
	logger := p.logger.Session("instance", lager.Data{
		"projectId":  instance.ProjectID,
		"instanceId": instance.InstanceID,
	})

	if err := instance.Validate(); err != nil {
		p.failInstance(logger, "validate-instance", err)
		return
	}

	meta, err := p.fetchMetadata(ctx, instance)
	if err != nil {
		p.failInstance(logger, "fetch-metadata", err)
		return
	}

	evaluated := p.evaluator.Evaluate(ctx, instance, meta)

	message := models.ScalingMessage{
		InstanceConfig: instance,
		CurrentNodes:   meta.NodeCount,
		Regional:       meta.Regional(),
		Metrics:        evaluated,
	}
	body, err := json.Marshal(message)
	if err != nil {
		p.failInstance(logger, "marshal-message", err)
		return
	}

	if err := p.dispatch(ctx, instance.ScalerPubSubTopic, body); err != nil {
		p.failInstance(logger, "dispatch-message", err)
		return
	}

	p.collector.IncInstancesDispatched()
	logger.Info("dispatched", lager.Data{
		"topic":        instance.ScalerPubSubTopic,
		"currentNodes": meta.NodeCount,
		"regional":     meta.Regional(),
		"metrics":      len(evaluated),
	})
}

func (p *Poller) failInstance(logger lager.Logger, action string, err error) {
	p.collector.IncInstancesFailed()
	logger.Error(action, err)
}

func (p *Poller) fetchMetadata(ctx context.Context, instance models.InstanceConfig) (models.InstanceMetadata, error) {
	fetchCtx := ctx
	if p.callTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, p.callTimeout)
		defer cancel()
	}
	return p.metadataFetcher.GetMetadata(fetchCtx, instance.ProjectID, instance.InstanceID)
}

// dispatch routes the publish through the topic's circuit breaker so a dead
// topic fails fast on subsequent instances instead of eating the batch
// deadline. There is no retry within a poll.
func (p *Poller) dispatch(ctx context.Context, topic string, body []byte) error {
	breaker := p.getBreaker(topic)
	if breaker.Tripped() {
		p.logger.Info("circuit-tripped", lager.Data{"topic": topic, "consecutiveFailures": breaker.ConsecFailures()})
	}
	return breaker.Call(func() error {
		publishCtx := ctx
		if p.callTimeout > 0 {
			var cancel context.CancelFunc
			publishCtx, cancel = context.WithTimeout(ctx, p.callTimeout)
			defer cancel()
		}
		return p.publisher.Publish(publishCtx, topic, body)
	}, 0)
}

func (p *Poller) getBreaker(topic string) *circuit.Breaker {
	p.breakerLock.Lock()
	defer p.breakerLock.Unlock()
	breaker, exists := p.breakers[topic]
	if !exists {
		breaker = circuit.NewConsecutiveBreaker(p.consecutiveFailureCount)
		p.breakers[topic] = breaker
	}
	return breaker
}
