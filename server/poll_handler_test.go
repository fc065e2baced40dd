package server_test

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spannerautoscaler/poller/fakes"
	"github.com/spannerautoscaler/poller/models"
	"github.com/spannerautoscaler/poller/server"
)

var _ = Describe("PollHandler", func() {
	var (
		runner  *fakes.FakePollRunner
		handler *server.PollHandler
		resp    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		runner = &fakes.FakePollRunner{}
		logger := lagertest.NewTestLogger("poll-handler-test")
		handler = server.NewPollHandler(logger, runner)
		resp = httptest.NewRecorder()
	})

	Describe("Poll", func() {
		It("decodes the base64 body and hands the batch to the runner", func() {
			batch := `[{"projectId":"p1","instanceId":"i1","scalerPubSubTopic":"t1"}]`
			body := base64.StdEncoding.EncodeToString([]byte(batch))
			req := httptest.NewRequest(http.MethodPost, "/v1/poll", strings.NewReader(body))

			handler.Poll(resp, req)

			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(runner.RunCallCount()).To(Equal(1))
			_, raw := runner.RunArgsForCall(0)
			Expect(string(raw)).To(Equal(batch))

			var result map[string]string
			Expect(json.Unmarshal(resp.Body.Bytes(), &result)).To(Succeed())
			Expect(result).To(HaveKeyWithValue("status", "ok"))
		})

		It("rejects a body that is not base64", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/poll", strings.NewReader("%%% not base64 %%%"))

			handler.Poll(resp, req)

			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(runner.RunCallCount()).To(BeZero())

			var errResp models.ErrorResponse
			Expect(json.Unmarshal(resp.Body.Bytes(), &errResp)).To(Succeed())
			Expect(errResp.Code).To(Equal("Bad-Request"))
		})

		It("reports a runner failure as an internal error", func() {
			runner.RunReturns(errors.New("batch exploded"))
			body := base64.StdEncoding.EncodeToString([]byte(`[]`))
			req := httptest.NewRequest(http.MethodPost, "/v1/poll", strings.NewReader(body))

			handler.Poll(resp, req)

			Expect(resp.Code).To(Equal(http.StatusInternalServerError))

			var errResp models.ErrorResponse
			Expect(json.Unmarshal(resp.Body.Bytes(), &errResp)).To(Succeed())
			Expect(errResp.Code).To(Equal("Internal-Server-Error"))
			Expect(errResp.Message).To(ContainSubstring("batch exploded"))
		})
	})

	Describe("TestPoll", func() {
		It("runs the fixed single-instance batch", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/poll/test", nil)

			handler.TestPoll(resp, req)

			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(runner.RunCallCount()).To(Equal(1))

			_, raw := runner.RunArgsForCall(0)
			var batch []models.InstanceDeclaration
			Expect(json.Unmarshal(raw, &batch)).To(Succeed())
			Expect(batch).To(HaveLen(1))
			Expect(batch[0].ProjectID).To(Equal("spanner-scaler"))
			Expect(batch[0].InstanceID).To(Equal("autoscale-test"))
		})
	})
})
