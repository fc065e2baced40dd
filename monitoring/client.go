package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/time/rate"

	"github.com/spannerautoscaler/poller/models"
)

const (
	DefaultQueriesPerSecond = 10
	DefaultBurst            = 5
)

type queryRequest struct {
	Filter           string `json:"filter"`
	WindowSeconds    int    `json:"windowSeconds"`
	AlignmentSeconds int    `json:"alignmentSeconds"`
	Reducer          string `json:"reducer"`
	Aligner          string `json:"aligner"`
}

type queryResponse struct {
	MaxValue float64 `json:"maxValue"`
}

// Client is safe for concurrent use; the limiter keeps the batch within the
// metrics backend's query quota.
type Client struct {
	logger     lager.Logger
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(logger lager.Logger, httpClient *http.Client, baseURL string, queriesPerSecond float64, burst int) *Client {
	if queriesPerSecond <= 0 {
		queriesPerSecond = DefaultQueriesPerSecond
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &Client{
		logger:     logger.Session("monitoring-client"),
		httpClient: httpClient,
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(queriesPerSecond), burst),
	}
}

func (c *Client) QueryMax(ctx context.Context, projectID string, def models.MetricDefinition, window time.Duration) (float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, &models.MetricSampleError{Metric: def.Name, Err: err}
	}

	requestBody, err := json.Marshal(queryRequest{
		Filter:           def.Filter,
		WindowSeconds:    int(window / time.Second),
		AlignmentSeconds: def.Period,
		Reducer:          def.Reducer,
		Aligner:          def.Aligner,
	})
	if err != nil {
		return 0, &models.MetricSampleError{Metric: def.Name, Err: err}
	}

	url := fmt.Sprintf("%s/v3/projects/%s/timeSeries:query", c.baseURL, projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return 0, &models.MetricSampleError{Metric: def.Name, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &models.MetricSampleError{Metric: def.Name, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, &models.MetricSampleError{Metric: def.Name, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return 0, &models.MetricSampleError{
			Metric: def.Name,
			Err:    fmt.Errorf("monitoring endpoint returned %d: %s", resp.StatusCode, string(body)),
		}
	}

	var queryResp queryResponse
	if err := json.Unmarshal(body, &queryResp); err != nil {
		return 0, &models.MetricSampleError{Metric: def.Name, Err: err}
	}

	c.logger.Debug("queried-max", lager.Data{"projectId": projectID, "metric": def.Name, "maxValue": queryResp.MaxValue})
	return queryResp.MaxValue, nil
}
