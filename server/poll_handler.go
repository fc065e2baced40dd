package server

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"

	"code.cloudfoundry.org/lager/v3"

	"github.com/spannerautoscaler/poller/helpers/handlers"
	"github.com/spannerautoscaler/poller/models"
)

// PollRunner runs one full poll cycle over a raw JSON batch.
type PollRunner interface {
	Run(ctx context.Context, raw []byte) error
}

// testPayload is the fixed single-instance batch used by the manual test
// endpoint.
const testPayload = `[
	{
		"projectId": "spanner-scaler",
		"instanceId": "autoscale-test",
		"scalerPubSubTopic": "projects/spanner-scaler/topics/test-scaling",
		"minNodes": 1,
		"maxNodes": 3
	}
]`

type PollHandler struct {
	logger lager.Logger
	runner PollRunner
}

func NewPollHandler(logger lager.Logger, runner PollRunner) *PollHandler {
	return &PollHandler{
		logger: logger,
		runner: runner,
	}
}

// Poll handles the scheduled trigger: the request body carries the
// base64-encoded JSON batch.
func (h *PollHandler) Poll(w http.ResponseWriter, r *http.Request) {
	encoded, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("poll-read-body", err)
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Error reading request body"})
		return
	}

	raw, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		h.logger.Error("poll-decode-body", err)
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Error decoding base64 request body"})
		return
	}

	h.run(w, r, raw)
}

// TestPoll handles the manual test invocation with a fixed single-instance
// payload.
func (h *PollHandler) TestPoll(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("test-poll")
	h.run(w, r, []byte(testPayload))
}

func (h *PollHandler) run(w http.ResponseWriter, r *http.Request, raw []byte) {
	if err := h.runner.Run(r.Context(), raw); err != nil {
		h.logger.Error("poll-run", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: err.Error()})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
