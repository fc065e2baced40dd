package server

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"

	"github.com/spannerautoscaler/poller/healthendpoint"
	"github.com/spannerautoscaler/poller/helpers"
	"github.com/spannerautoscaler/poller/routes"
)

func NewServer(logger lager.Logger, conf helpers.ServerConfig, runner PollRunner, httpStatusCollector healthendpoint.HTTPStatusCollector) (ifrit.Runner, error) {
	pollHandler := NewPollHandler(logger.Session("poll-handler"), runner)
	httpStatusCollectMiddleware := healthendpoint.NewHTTPStatusCollectMiddleware(httpStatusCollector)

	router := routes.PollerRoutes()
	router.Use(httpStatusCollectMiddleware.Collect)
	router.Get(routes.PollRouteName).Handler(http.HandlerFunc(pollHandler.Poll))
	router.Get(routes.TestPollRouteName).Handler(http.HandlerFunc(pollHandler.TestPoll))

	return helpers.NewHTTPServer(logger.Session("http-server"), conf, router)
}
