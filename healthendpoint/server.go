package healthendpoint

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"

	"github.com/spannerautoscaler/poller/helpers"
	"github.com/spannerautoscaler/poller/helpers/handlers"
)

// NewServer serves liveness under /health and the prometheus gatherer under
// everything else on the health port.
func NewServer(logger lager.Logger, conf helpers.ServerConfig, gatherer prometheus.Gatherer) (ifrit.Runner, error) {
	router := NewHealthRouter(gatherer)
	return helpers.NewHTTPServer(logger.Session("health-server"), conf, router)
}

func NewHealthRouter(gatherer prometheus.Gatherer) *mux.Router {
	router := mux.NewRouter()
	router.Path("/health").Methods(http.MethodGet).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "up"})
	})
	router.PathPrefix("").Handler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return router
}
