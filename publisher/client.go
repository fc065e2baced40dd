package publisher

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"code.cloudfoundry.org/lager/v3"

	"github.com/spannerautoscaler/poller/models"
)

type publishRequest struct {
	Messages []pubsubMessage `json:"messages"`
}

type pubsubMessage struct {
	Data string `json:"data"`
}

type Client struct {
	logger     lager.Logger
	httpClient *http.Client
	baseURL    string
}

func NewClient(logger lager.Logger, httpClient *http.Client, baseURL string) *Client {
	return &Client{
		logger:     logger.Session("publisher-client"),
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// Publish posts the message to the topic's publish endpoint. The message body
// goes out base64 encoded, matching how the trigger payload comes in.
func (c *Client) Publish(ctx context.Context, topic string, message []byte) error {
	requestBody, err := json.Marshal(publishRequest{
		Messages: []pubsubMessage{{Data: base64.StdEncoding.EncodeToString(message)}},
	})
	if err != nil {
		return &models.DispatchError{Topic: topic, Err: err}
	}

	url := fmt.Sprintf("%s/v1/%s:publish", c.baseURL, topic)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return &models.DispatchError{Topic: topic, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &models.DispatchError{Topic: topic, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return &models.DispatchError{
			Topic: topic,
			Err:   fmt.Errorf("publish endpoint returned %d: %s", resp.StatusCode, string(body)),
		}
	}

	c.logger.Debug("published", lager.Data{"topic": topic, "bytes": len(message)})
	return nil
}
