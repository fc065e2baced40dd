package routes

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	PollPath      = "/v1/poll"
	PollRouteName = "Poll"

	TestPollPath      = "/v1/poll/test"
	TestPollRouteName = "TestPoll"
)

// PollerRoutes returns the router for the trigger endpoints: the scheduled
// poll and the fixed-payload test invocation.
func PollerRoutes() *mux.Router {
	router := mux.NewRouter()
	router.Path(TestPollPath).Methods(http.MethodPost).Name(TestPollRouteName)
	router.Path(PollPath).Methods(http.MethodPost).Name(PollRouteName)
	return router
}
