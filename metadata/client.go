package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v4"

	"github.com/spannerautoscaler/poller/models"
)

const DefaultRetryMaxElapsed = 10 * time.Second

type Client struct {
	logger          lager.Logger
	httpClient      *http.Client
	baseURL         string
	retryMaxElapsed time.Duration
}

func NewClient(logger lager.Logger, httpClient *http.Client, baseURL string, retryMaxElapsed time.Duration) *Client {
	if retryMaxElapsed <= 0 {
		retryMaxElapsed = DefaultRetryMaxElapsed
	}
	return &Client{
		logger:          logger.Session("metadata-client"),
		httpClient:      httpClient,
		baseURL:         baseURL,
		retryMaxElapsed: retryMaxElapsed,
	}
}

// GetMetadata fetches node count and instance config path. Transient backend
// failures are retried with exponential backoff until the retry budget or the
// caller's context runs out; a missing instance is not retried.
func (c *Client) GetMetadata(ctx context.Context, projectID, instanceID string) (models.InstanceMetadata, error) {
	url := fmt.Sprintf("%s/v1/projects/%s/instances/%s", c.baseURL, projectID, instanceID)

	var meta models.InstanceMetadata
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return json.Unmarshal(body, &meta)
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(fmt.Errorf("instance does not exist: %s", string(body)))
		case resp.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("metadata endpoint returned %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("metadata endpoint returned %d: %s", resp.StatusCode, string(body)))
		}
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxElapsedTime = c.retryMaxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return models.InstanceMetadata{}, &models.MetadataFetchError{ProjectID: projectID, InstanceID: instanceID, Err: err}
	}

	c.logger.Debug("got-metadata", lager.Data{
		"projectId":  projectID,
		"instanceId": instanceID,
		"nodeCount":  meta.NodeCount,
		"configPath": meta.ConfigPath,
	})
	return meta, nil
}
