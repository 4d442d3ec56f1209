package server

import (
	"net/http"

	"code.cloudfoundry.org/asg-refresher/config"
	"code.cloudfoundry.org/asg-refresher/healthendpoint"
	"code.cloudfoundry.org/asg-refresher/helpers"
	"code.cloudfoundry.org/asg-refresher/refresher"
	"code.cloudfoundry.org/asg-refresher/routes"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/tedsuo/ifrit"
)

type VarsFunc func(w http.ResponseWriter, r *http.Request, vars map[string]string)

func (vh VarsFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vh(w, r, vars)
}

func NewRouter(logger lager.Logger, refresher refresher.Refresher, httpStatusCollector healthendpoint.HTTPStatusCollector) *mux.Router {
	handler := NewRefreshHandler(logger, refresher)
	httpStatusCollectMiddleware := healthendpoint.NewHTTPStatusCollectMiddleware(httpStatusCollector)

	r := routes.RefresherRoutes()
	r.Use(httpStatusCollectMiddleware.Collect)
	r.Get(routes.RefreshRouteName).Handler(VarsFunc(handler.Refresh))
	return r
}

func NewServer(logger lager.Logger, conf *config.Config, refresher refresher.Refresher, httpStatusCollector healthendpoint.HTTPStatusCollector) ifrit.Runner {
	r := NewRouter(logger, refresher, httpStatusCollector)
	return helpers.NewHTTPServer(logger, conf.Server.Port, r)
}
